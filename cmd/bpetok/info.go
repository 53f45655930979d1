package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display model information",
		Long: `Display information about a loaded BPE model: vocabulary size and the
active decoration / fallback options.`,
		Example: `  # Show model information
  bpetok info --vocab vocab.json --merges merges.txt`,
		RunE: runInfo,
	}
	return cmd
}

func runInfo(cmd *cobra.Command, _ []string) error {
	model, err := loadModel(cmd)
	if err != nil {
		return err
	}

	fmt.Println("BPE Model Information")
	fmt.Println("======================")
	fmt.Printf("Vocabulary size:           %d\n", model.GetVocabSize())

	if unk, ok := model.GetUnkToken(); ok {
		fmt.Printf("Unk token:                 %q\n", unk)
	} else {
		fmt.Println("Unk token:                 (none)")
	}

	if prefix, ok := model.GetContinuingSubwordPrefix(); ok {
		fmt.Printf("Continuing subword prefix: %q\n", prefix)
	} else {
		fmt.Println("Continuing subword prefix: (none)")
	}

	fmt.Printf("Fuse unk:                  %v\n", fuseUnk)
	fmt.Printf("Byte fallback:             %v\n", byteFallback)
	fmt.Printf("Ignore merges:             %v\n", ignoreMerges)
	if cmd.Flags().Changed("dropout") {
		fmt.Printf("Dropout:                   %v\n", dropout)
	} else {
		fmt.Println("Dropout:                   (none)")
	}

	trainer := model.GetTrainer()
	fmt.Printf("Default trainer vocab size: %d\n", trainer.VocabSize)
	return nil
}
