package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/cobra"

	"github.com/fernlight/readably"
)

var (
	outputFormat string
	outputFile   string
	timeout      time.Duration
	allowPrivate bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parser",
		Short: "readably - readable article content extraction tool",
		Long:  "readably extracts clean article content and metadata from a single web page",
	}

	parseCmd := &cobra.Command{
		Use:   "parse [url]",
		Short: "Parse a URL and extract its article content",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json|html|markdown)")
	parseCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	parseCmd.Flags().BoolVar(&allowPrivate, "allow-private-networks", false, "Allow fetching private/localhost URLs")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readably v0.1.0")
		},
	}

	rootCmd.AddCommand(parseCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	url := args[0]

	client := readably.New(
		readably.WithTimeout(timeout),
		readably.WithAllowPrivateNetworks(allowPrivate),
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	product, err := client.Parse(ctx, url)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", url, err)
	}

	output, err := formatProduct(product)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, output, 0644)
	}
	fmt.Println(string(output))
	return nil
}

func formatProduct(product *readably.Product) ([]byte, error) {
	switch outputFormat {
	case "json":
		return json.MarshalIndent(product, "", "  ")
	case "html":
		return []byte(product.Content), nil
	case "markdown":
		converter := md.NewConverter("", true, nil)
		markdown, err := converter.ConvertString(product.Content)
		if err != nil {
			return nil, fmt.Errorf("converting content to markdown: %w", err)
		}
		return []byte(markdown), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", outputFormat)
	}
}
