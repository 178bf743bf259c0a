package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func writeHelp(w io.Writer, cmd *Command) {
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", cmd.Name, cmd.Short)
	} else {
		fmt.Fprintf(w, "%s\n", cmd.Name)
	}

	if cmd.Long != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(cmd.Long, "\n"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine(cmd))

	flags := cmd.Flags().sorted()
	if len(flags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, def := range flags {
			fmt.Fprintln(tw, formatFlagHelpLine(def))
		}
		fmt.Fprintln(tw, "  -h, --help\tShow this help")
		tw.Flush()
	}

	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Example:")
		ex := strings.TrimRight(cmd.Example, "\n")
		for _, line := range strings.Split(ex, "\n") {
			if line == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func usageLine(cmd *Command) string {
	segments := []string{cmd.Name}
	if len(cmd.Flags().byLong) > 0 {
		segments = append(segments, "[flags]")
	}
	if cmd.Usage != "" {
		segments = append(segments, cmd.Usage)
	} else {
		segments = append(segments, "[args]")
	}
	return strings.Join(segments, " ")
}

func formatFlagHelpLine(def *flagDef) string {
	var names string
	if def.shorthand != 0 {
		names = fmt.Sprintf("-%c, --%s", def.shorthand, def.name)
	} else {
		names = fmt.Sprintf("    --%s", def.name)
	}
	suffix := ""
	if def.kind != flagBool {
		suffix = fmt.Sprintf(" <%s>", def.kindName())
	}
	usage := strings.TrimSpace(def.usage)
	if def.defValue != "" {
		usage = strings.TrimSpace(fmt.Sprintf("%s (default %s)", usage, def.defValue))
	}
	if def.kind == flagStringSlice {
		usage = strings.TrimSpace(usage + " [repeatable]")
	}
	if usage == "" {
		return fmt.Sprintf("  %s%s", names, suffix)
	}
	return fmt.Sprintf("  %s%s\t%s", names, suffix, usage)
}
