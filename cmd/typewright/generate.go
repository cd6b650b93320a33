package main

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/typewright/typewright/graphio"
	"github.com/typewright/typewright/javascript"
)

var (
	generateInput       string
	generateOutput      string
	generateNoTypecheck bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a JavaScript artifact from a graph description",
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateInput == "" || generateOutput == "" {
			return errors.New("both --input and --output are required")
		}
		g, err := graphio.Load(generateInput)
		if err != nil {
			return err
		}
		opts := javascript.DefaultOptions()
		opts.RuntimeTypecheck = !generateNoTypecheck
		log.Debugw("rendering artifact",
			"input", generateInput,
			"types", len(g.NamedTypes()),
			"topLevels", len(g.TopLevels()),
			"runtimeTypecheck", opts.RuntimeTypecheck,
		)
		src, err := javascript.Render(g, opts)
		if err != nil {
			return err
		}
		if dir := filepath.Dir(generateOutput); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(err, "creating output dir")
			}
		}
		if err := os.WriteFile(generateOutput, src, 0o644); err != nil {
			return errors.Wrap(err, "writing output")
		}
		log.Infow("wrote artifact", "output", generateOutput, "bytes", len(src))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "graph description file (.json, .yaml)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output JavaScript file")
	generateCmd.Flags().BoolVar(&generateNoTypecheck, "no-runtime-typecheck", false,
		"emit pass-through deserializers without the runtime validator")
}
