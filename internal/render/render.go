// Package render formats the gathered host information as console output.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sysglance/sysglance/internal/format"
	"github.com/sysglance/sysglance/internal/fsinfo"
	"github.com/sysglance/sysglance/internal/netinfo"
	"github.com/sysglance/sysglance/internal/sysinfo"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Report bundles everything the renderer prints.
type Report struct {
	OS            sysinfo.OSInfo
	Runtime       sysinfo.RuntimeInfo
	Clock         sysinfo.ClockInfo
	Network       netinfo.Info
	Filesystem    fsinfo.Info
	HasFilesystem bool
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	titleColor = color.New(color.FgBlue, color.Bold)
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed)
)

// Write prints the full report to w: title banner, OS tree, runtime table,
// network panel, filesystem table and time panel, in that order. The section
// layout is the same no matter which queries succeeded; undetermined fields
// are marked rather than omitted.
func Write(w io.Writer, r Report) {
	writeBanner(w)
	writeOSTree(w, r.OS)
	writeRuntimeTable(w, r.Runtime)
	writeNetworkPanel(w, r.Network)
	writeFilesystem(w, r.Filesystem, r.HasFilesystem)
	writeTimePanel(w, r.Clock)
}

func writeBanner(w io.Writer) {
	fmt.Fprintln(w, panelStyle.Render(titleColor.Sprint("System Information")))
}

func writeOSTree(w io.Writer, info sysinfo.OSInfo) {
	t := tree.Root("🖥️  Operating System").
		Child(field("Name", info.Name)).
		Child(field("Release", info.Release)).
		Child(field("Version", info.Version)).
		Child(field("Platform", info.Platform)).
		Child(field("Architecture", info.Architecture)).
		Child(field("Machine", info.Machine)).
		Child(field("Processor", info.Processor))

	if info.Edition != "" {
		t.Child(field("Windows Edition", info.Edition))
	}

	fmt.Fprintln(w, t.String())
}

func writeRuntimeTable(w io.Writer, rt sysinfo.RuntimeInfo) {
	fmt.Fprintln(w, titleColor.Sprint("🐹 Go Environment"))

	table := newPropertyTable(w, "Property")
	table.Append([]string{"Version", rt.Version})
	table.Append([]string{"Compiler", rt.Compiler})
	table.Append([]string{"Implementation", rt.Implementation})
	table.Append([]string{"Executable", rt.Executable})
	table.Append([]string{"API Version", rt.APIVersion})
	table.Render()
}

func writeNetworkPanel(w io.Writer, n netinfo.Info) {
	body := field("Hostname", n.Hostname) + "\n" +
		field("IP Address", n.IPAddress) + "\n" +
		field("FQDN", n.FQDN)

	fmt.Fprintln(w, panelStyle.Render(titleColor.Sprint("🌐 Network Information")+"\n"+body))
}

func writeFilesystem(w io.Writer, fs fsinfo.Info, ok bool) {
	if !ok {
		fmt.Fprintln(w, errorColor.Sprint("Could not get filesystem information"))
		return
	}

	fmt.Fprintln(w, titleColor.Sprint("💾 Filesystem Information"))

	table := newPropertyTable(w, "Metric")
	table.Append([]string{"Total Size", format.Bytes(fs.Total)})
	table.Append([]string{"Available Space", format.Bytes(fs.Available)})
	table.Append([]string{"Used Space", format.Bytes(fs.Used)})
	if fs.HasFlags {
		value := strconv.FormatInt(fs.Flags, 10)
		if fs.TypeName != "" {
			value = fs.TypeName + " (" + value + ")"
		}
		table.Append([]string{"Filesystem Type", value})
	}
	table.Render()
}

func writeTimePanel(w io.Writer, c sysinfo.ClockInfo) {
	body := field("Current Time (UTC)", c.UTC) + "\n" +
		field("Current Time (Local)", c.Local) + "\n" +
		field("Current Timezone", c.Timezone)

	fmt.Fprintln(w, panelStyle.Render(titleColor.Sprint("⏰ Time Information")+"\n"+body))
}

func newPropertyTable(w io.Writer, keyHeader string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{keyHeader, "Value"})
	table.SetAutoWrapText(false)
	if !color.NoColor {
		table.SetColumnColor(
			tablewriter.Colors{tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.FgGreenColor},
		)
	}
	return table
}

// field renders a "Label: value" line, marking undetermined values instead of
// leaving them blank.
func field(label, value string) string {
	if value == "" {
		return labelColor.Sprintf("%s: ", label) + errorColor.Sprint("could not be determined")
	}
	return labelColor.Sprintf("%s: ", label) + valueColor.Sprint(value)
}
