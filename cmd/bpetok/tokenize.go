package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpe"
)

var tokenizeOutput string

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [text]",
		Short: "Tokenize text against a vocab/merges pair",
		Long: `Tokenize text into subword tokens using a BPE vocab.json / merges.txt
pair.

If no text is provided as an argument, input is read from stdin, one line
per call to Tokenize.`,
		Example: `  # Tokenize a string
  bpetok tokenize --vocab vocab.json --merges merges.txt "unrelated"

  # Tokenize lines from stdin
  cat corpus.txt | bpetok tokenize --vocab vocab.json --merges merges.txt

  # JSON output with ids and offsets
  bpetok tokenize --vocab vocab.json --merges merges.txt --output json "hi"`,
		RunE: runTokenize,
	}

	cmd.Flags().StringVarP(&tokenizeOutput, "output", "o", "text", "output format: text, json")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	model, err := loadModel(cmd)
	if err != nil {
		return err
	}

	var lines []string
	if len(args) > 0 {
		lines = append(lines, args[0])
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil && err != io.EOF {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	for _, line := range lines {
		tokens, err := model.Tokenize(line)
		if err != nil {
			return fmt.Errorf("tokenizing %q: %w", line, err)
		}
		if err := printTokens(tokens); err != nil {
			return err
		}
	}
	return nil
}

func printTokens(tokens []bpe.Token) error {
	switch tokenizeOutput {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(tokens)
	default:
		for _, tok := range tokens {
			fmt.Printf("%d\t%q\t[%d:%d]\n", tok.ID, tok.Value, tok.Offsets.Start, tok.Offsets.End)
		}
		return nil
	}
}
