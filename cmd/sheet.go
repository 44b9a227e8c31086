package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/db"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/spf13/cobra"
)

// newStore is replaced in tests
var newStore = func(cfg constants.Config) (*db.Store, error) {
	client, err := db.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return db.NewStore(client, cfg.Table), nil
}

var (
	sheetKey   = root.C
	sheetTitle string
	sheetTo    = root.C
)

func init() {
	sheetPutCmd.Flags().Var(&sheetKey, "key", "key the sheet is written in")
	sheetPutCmd.Flags().StringVar(&sheetTitle, "title", "", "title of the song")
	sheetGetCmd.Flags().Var(&sheetTo, "to", "transpose the sheet to this key")
	sheetCmd.AddCommand(sheetPutCmd, sheetGetCmd)
	rootCmd.AddCommand(sheetCmd)
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Stores and fetches sheets",
}

var sheetPutCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Stores a sheet and prints its id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		store, err := newStore(cfg)
		if err != nil {
			return err
		}
		sheet, err := store.PutSheet(commandContext(cmd), model.Sheet{
			Title: sheetTitle,
			Key:   sheetKey,
			Text:  text,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sheet.Id)
		return nil
	},
}

var sheetGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a stored sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore(cfg)
		if err != nil {
			return err
		}
		sheet, err := store.GetSheet(commandContext(cmd), args[0])
		if err != nil {
			return err
		}
		text := sheet.Text
		if cmd.Flags().Changed("to") {
			text = chord.TransposeText(text, sheet.Key, sheetTo)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	},
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
