package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	typewright "github.com/typewright/typewright"
	"github.com/typewright/typewright/descriptor"
	"github.com/typewright/typewright/graphio"
	"github.com/typewright/typewright/naming"
)

var (
	checkInput string
	checkType  string
)

var checkCmd = &cobra.Command{
	Use:   "check value.json",
	Short: "Validate a JSON document against a declared type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkInput == "" || checkType == "" {
			return errors.New("both --input and --type are required")
		}
		g, err := graphio.Load(checkInput)
		if err != nil {
			return err
		}
		if err := typewright.AssignNames(g, naming.NewAllocator()); err != nil {
			return err
		}
		name, err := resolveTypeName(g, checkType)
		if err != nil {
			return err
		}
		table, err := descriptor.Compile(g)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading %s", args[0])
		}
		var value any
		if err := gojson.Unmarshal(data, &value); err != nil {
			return errors.Wrap(err, "decoding value")
		}

		if _, err := table.ValidateNamed(name, value); err != nil {
			color.Red("%s: %v", args[0], err)
			os.Exit(1)
		}
		color.Green("%s: valid %s", args[0], name)
		return nil
	},
}

// resolveTypeName accepts either the declared source name or the legalized
// identifier of a named type.
func resolveTypeName(g *typewright.Graph, want string) (string, error) {
	for _, nt := range g.NamedTypes() {
		assigned, ok := nt.Assigned()
		if !ok {
			continue
		}
		if nt.SourceName == want || assigned == want {
			return assigned, nil
		}
	}
	return "", fmt.Errorf("type %q is not declared", want)
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "graph description file (.json, .yaml)")
	checkCmd.Flags().StringVarP(&checkType, "type", "t", "", "declared type name to validate against")
}
