// Package main provides the bpetok CLI: a thin wrapper around package bpe
// for tokenizing text, inspecting a model, and re-saving its vocab/merges
// from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpe"
)

var (
	vocabPath               string
	mergesPath              string
	unkToken                string
	continuingSubwordPrefix string
	endOfWordSuffix         string
	fuseUnk                 bool
	byteFallback            bool
	ignoreMerges            bool
	dropout                 float64
	seed                    uint64
	cacheCapacity           int
	verbose                 bool
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bpetok",
	Short: "A byte pair encoding tokenizer CLI",
	Long: `bpetok loads a BPE vocabulary and merge table and tokenizes text
against it.

A vocab.json and merges.txt pair are required for every subcommand except
version and completion.`,
	Example: `  # Tokenize text
  bpetok tokenize --vocab vocab.json --merges merges.txt "Hello, world!"

  # Show model information
  bpetok info --vocab vocab.json --merges merges.txt

  # Re-save a model's vocab and merges in canonical form
  bpetok save --vocab vocab.json --merges merges.txt ./out`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bpetok version %s\n", version)
	},
}

var version = "dev"

func init() {
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "", "path to vocab.json")
	rootCmd.PersistentFlags().StringVar(&mergesPath, "merges", "", "path to merges.txt")
	rootCmd.PersistentFlags().StringVar(&unkToken, "unk", "", "unk token string")
	rootCmd.PersistentFlags().StringVar(&continuingSubwordPrefix, "continuing-subword-prefix", "", "prefix applied to non-initial subwords")
	rootCmd.PersistentFlags().StringVar(&endOfWordSuffix, "end-of-word-suffix", "", "suffix applied to the final subword of a word")
	rootCmd.PersistentFlags().BoolVar(&fuseUnk, "fuse-unk", false, "fuse adjacent unk emissions into one token")
	rootCmd.PersistentFlags().BoolVar(&byteFallback, "byte-fallback", false, "fall back to <0xNN> tokens for unknown bytes")
	rootCmd.PersistentFlags().BoolVar(&ignoreMerges, "ignore-merges", false, "skip merging when the whole input is already a vocab entry")
	rootCmd.PersistentFlags().Float64Var(&dropout, "dropout", 0, "merge dropout probability in [0,1]")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for the dropout RNG")
	rootCmd.PersistentFlags().IntVar(&cacheCapacity, "cache-capacity", bpe.DefaultCacheCapacity, "tokenize cache capacity (0 disables caching)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log model construction details to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newSaveCmd())
}

func loadModel(cmd *cobra.Command) (*bpe.Model, error) {
	if vocabPath == "" || mergesPath == "" {
		return nil, fmt.Errorf("--vocab and --merges are required")
	}

	b := bpe.NewBuilder().Files(vocabPath, mergesPath).CacheCapacity(cacheCapacity)
	if unkToken != "" {
		b = b.UnkToken(unkToken)
	}
	if cmd.Flags().Changed("continuing-subword-prefix") {
		b = b.ContinuingSubwordPrefix(continuingSubwordPrefix)
	}
	if cmd.Flags().Changed("end-of-word-suffix") {
		b = b.EndOfWordSuffix(endOfWordSuffix)
	}
	if fuseUnk {
		b = b.FuseUnk(true)
	}
	if byteFallback {
		b = b.ByteFallback(true)
	}
	if ignoreMerges {
		b = b.IgnoreMerges(true)
	}
	if cmd.Flags().Changed("dropout") {
		b = b.Dropout(dropout)
	}
	if cmd.Flags().Changed("seed") {
		b = b.Seed(seed)
	}

	if verbose {
		logger.Info("loading model", "vocab", vocabPath, "merges", mergesPath)
	}

	m, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}
	if verbose {
		logger.Info("model loaded", "vocab_size", m.GetVocabSize())
	}
	return m, nil
}
