package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	tf "github.com/hdu-hh/tfgraph"
	"github.com/hdu-hh/tfgraph/internal/envconfig"
	"github.com/hdu-hh/tfgraph/internal/pipeline"
	"github.com/hdu-hh/tfgraph/pbs"
)

func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-26s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI returns the tfgraph root command.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "tfgraph",
		Short:         "Build and inspect TensorFlow parsing graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: envconfig.LogLevel(),
			})))
		},
	}

	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "List registered operation types",
		Args:  cobra.NoArgs,
		RunE:  OpsHandler,
	}

	buildCmd := &cobra.Command{
		Use:   "build FILE.hcl",
		Short: "Build the graph of a pipeline file",
		Args:  cobra.ExactArgs(1),
		RunE:  BuildHandler,
	}
	buildCmd.Flags().StringP("output", "o", "", "Write the binary GraphDef to this file")
	buildCmd.Flags().String("name-collision", "", "Policy for taken operation names: suffix or fail")

	inspectCmd := &cobra.Command{
		Use:   "inspect FILE.pb",
		Short: "Show the nodes of a binary GraphDef",
		Args:  cobra.ExactArgs(1),
		RunE:  InspectHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show configuration variables",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}

	envVars := envconfig.AsMap()
	appendEnvDocs(buildCmd, []envconfig.EnvVar{
		envVars["TFGRAPH_DEBUG"],
		envVars["TFGRAPH_NAME_COLLISION"],
		envVars["TFGRAPH_GRAPHDEF_PRODUCER"],
	})
	appendEnvDocs(opsCmd, []envconfig.EnvVar{envVars["TFGRAPH_DEBUG"]})

	rootCmd.AddCommand(opsCmd, buildCmd, inspectCmd, envCmd)
	return rootCmd
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// OpsHandler prints the registered op schemas.
func OpsHandler(cmd *cobra.Command, args []string) error {
	var data [][]string
	for _, def := range tf.OpDefs() {
		var inputs, outputs, attrs []string
		for _, arg := range def.InputArgs {
			inputs = append(inputs, formatArg(arg))
		}
		for _, arg := range def.OutputArgs {
			outputs = append(outputs, formatArg(arg))
		}
		for _, attr := range def.Attrs {
			attrs = append(attrs, formatAttr(attr))
		}
		differentiable := "no"
		if tf.IsDifferentiable(def.Name) {
			differentiable = "yes"
		}
		data = append(data, []string{
			def.Name,
			strings.Join(inputs, ", "),
			strings.Join(outputs, ", "),
			strings.Join(attrs, ", "),
			differentiable,
		})
	}

	table := newTable(cmd.OutOrStdout(), []string{"TYPE", "INPUTS", "OUTPUTS", "ATTRS", "DIFFERENTIABLE"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func formatArg(arg tf.ArgDef) string {
	switch {
	case arg.TypeAttr != "":
		return arg.Name + ":" + arg.TypeAttr
	case arg.TypeListAttr != "":
		return arg.Name + ":list(" + arg.TypeListAttr + ")"
	}
	return arg.Name + ":" + arg.Type.String()
}

func formatAttr(attr tf.AttrDef) string {
	s := attr.Name + ":" + string(attr.Type)
	if attr.Default != nil {
		s += fmt.Sprintf("=%q", fmt.Sprint(attr.Default))
	}
	return s
}

// BuildHandler builds a pipeline file and prints its nodes, or writes the
// GraphDef if an output file is given.
func BuildHandler(cmd *cobra.Command, args []string) error {
	var opts []tf.GraphOption
	if policy, _ := cmd.Flags().GetString("name-collision"); policy != "" {
		nc, err := tf.ParseNameCollision(policy)
		if err != nil {
			return err
		}
		opts = append(opts, tf.WithNameCollision(nc))
	}

	p, err := pipeline.Load(args[0])
	if err != nil {
		return err
	}
	g, err := p.Graph(opts...)
	if err != nil {
		return err
	}
	slog.Debug("built graph", "file", args[0], "operations", g.NumOperations())

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return printNodes(cmd.OutOrStdout(), g.ToGraphDef())
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := g.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// InspectHandler prints the nodes of a binary GraphDef file.
func InspectHandler(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	gd := &pbs.GraphDef{}
	if err := pbs.Unmarshal(b, gd); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if v := gd.GetVersions(); v != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "producer %d, %d nodes\n", v.GetProducer(), len(gd.GetNode()))
	}
	return printNodes(cmd.OutOrStdout(), gd)
}

func printNodes(w io.Writer, gd *pbs.GraphDef) error {
	var data [][]string
	for _, n := range gd.Node {
		keys := make([]string, 0, len(n.Attr))
		for k := range n.Attr {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		attrs := make([]string, len(keys))
		for i, k := range keys {
			attrs[i] = k + "=" + formatAttrValue(n.Attr[k])
		}
		data = append(data, []string{n.Name, n.Op, strings.Join(n.Input, ", "), n.Device, strings.Join(attrs, ", ")})
	}

	table := newTable(w, []string{"NAME", "OP", "INPUTS", "DEVICE", "ATTRS"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func formatAttrValue(v *pbs.AttrValue) string {
	if v == nil {
		return ""
	}
	switch v := v.Value.(type) {
	case *pbs.AttrValue_S:
		return fmt.Sprintf("%q", v.S)
	case *pbs.AttrValue_I:
		return fmt.Sprint(v.I)
	case *pbs.AttrValue_F:
		return fmt.Sprint(v.F)
	case *pbs.AttrValue_B:
		return fmt.Sprint(v.B)
	case *pbs.AttrValue_Type:
		return tf.DataType(v.Type).String()
	case *pbs.AttrValue_List:
		if v.List == nil {
			return "[]"
		}
		var items []string
		for _, s := range v.List.S {
			items = append(items, fmt.Sprintf("%q", s))
		}
		for _, i := range v.List.I {
			items = append(items, fmt.Sprint(i))
		}
		for _, f := range v.List.F {
			items = append(items, fmt.Sprint(f))
		}
		for _, b := range v.List.B {
			items = append(items, fmt.Sprint(b))
		}
		for _, t := range v.List.Type {
			items = append(items, tf.DataType(t).String())
		}
		return "[" + strings.Join(items, " ") + "]"
	}
	return ""
}

// EnvHandler prints the configuration variables with their values.
func EnvHandler(cmd *cobra.Command, args []string) error {
	vars := envconfig.AsMap()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var data [][]string
	for _, name := range names {
		v := vars[name]
		data = append(data, []string{v.Name, fmt.Sprint(v.Value), v.Description})
	}
	table := newTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"})
	table.AppendBulk(data)
	table.Render()
	return nil
}
