package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/prosechunk/internal/ui/pretty"
)

// helpStyles holds the lipgloss styles for command help output.
type helpStyles struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	example    lipgloss.Style
	dim        lipgloss.Style
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpStyles{
			command:    plain,
			heading:    plain,
			subcommand: plain,
			flag:       plain,
			example:    plain,
			dim:        plain,
		}
	}

	return &helpStyles{
		command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// helpFormatter renders styled usage and help text for Cobra commands.
type helpFormatter struct {
	styles *helpStyles
}

// newHelpFormatter creates a help formatter honoring the given color mode.
func newHelpFormatter(colorMode string, writer io.Writer) *helpFormatter {
	return &helpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

const usageTemplateText = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleDim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplateText = `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingSpace }}

{{end}}` + usageTemplateText

// templateFuncs returns the functions referenced by the help templates.
func (h *helpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":      h.styles.command.Render,
		"styleHeading":      h.styles.heading.Render,
		"styleSubcommand":   h.styles.subcommand.Render,
		"styleExample":      h.styles.example.Render,
		"styleDim":          h.styles.dim.Render,
		"styleFlags":        h.styleFlags,
		"join":              strings.Join,
		"rpad":              rpad,
		"trimTrailingSpace": trimTrailingSpace,
	}
}

// flagDescGap matches the run of spaces pflag puts between a flag definition
// and its description.
//
//nolint:gochecknoglobals // Compiled once, read-only afterwards.
var flagDescGap = regexp.MustCompile(`\S(  +)\S`)

// styleFlags renders a pflag FlagSet's usage block with styled flag names.
func (h *helpFormatter) styleFlags(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles a single "  -f, --flag type   description" line.
func (h *helpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	// Wrapped description continuations carry no flag definition.
	if !strings.HasPrefix(trimmed, "-") {
		return line
	}

	loc := flagDescGap.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		return indent + h.styleFlagTokens(trimmed)
	}

	defPart := trimmed[:loc[2]]
	gap := trimmed[loc[2]:loc[3]]
	descPart := trimmed[loc[3]:]

	return indent + h.styleFlagTokens(defPart) + gap + descPart
}

// styleFlagTokens colors flag names and dims type indicators.
func (h *helpFormatter) styleFlagTokens(def string) string {
	tokens := strings.Fields(def)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			name := strings.TrimSuffix(token, ",")
			styled := h.styles.flag.Render(name)
			if name != token {
				styled += ","
			}
			tokens[i] = styled
		} else {
			tokens[i] = h.styles.dim.Render(token)
		}
	}
	return strings.Join(tokens, " ")
}

// applyTo installs the styled templates on a command and its subcommands.
func (h *helpFormatter) applyTo(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(usageTemplateText)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(helpTemplateText)
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad pads a string on the right to the given width.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingSpace removes trailing whitespace from each line.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
