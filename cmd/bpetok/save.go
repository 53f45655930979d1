package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpe"
)

var saveName string

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [folder]",
		Short: "Re-save a model's vocab and merges in canonical form",
		Long: `Load a vocab.json / merges.txt pair and write them back out to folder in
their canonical, deterministically ordered form -- useful for diffing two
vocabularies or normalizing one produced by another tool.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Re-save a model into ./out
  bpetok save --vocab vocab.json --merges merges.txt ./out

  # Re-save with a file-name prefix
  bpetok save --vocab vocab.json --merges merges.txt --name mymodel ./out`,
		RunE: runSave,
	}
	cmd.Flags().StringVar(&saveName, "name", "", "file name prefix for the saved vocab/merges")
	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	model, err := loadModel(cmd)
	if err != nil {
		return err
	}

	var namePtr *string
	if saveName != "" {
		namePtr = &saveName
	}

	paths, err := bpe.Save(model, args[0], namePtr)
	if err != nil {
		return fmt.Errorf("saving model: %w", err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
