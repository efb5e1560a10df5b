package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tillworks/receiptd/internal/config"
	"github.com/tillworks/receiptd/internal/discovery"
	"github.com/tillworks/receiptd/internal/logging"
	"github.com/tillworks/receiptd/internal/printer"
	"github.com/tillworks/receiptd/internal/server"
	"github.com/tillworks/receiptd/internal/ui"
	"github.com/tillworks/receiptd/internal/version"
)

// Common flags
var (
	configPath string
	devicePath string
)

// Detect command flags
var (
	outputJSON  bool
	showNotes   bool
	interactive bool
	noSerial    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "receiptd.yaml", "Path to configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the receiptd HTTP API server",
	Long: `Start the HTTP API that exposes printer discovery to a print-serving
frontend.

The server reads its settings from the configuration file, a .env file in the
working directory, and RECEIPTD_* environment variables, in that order.`,
	Example: `  # Start with defaults (127.0.0.1:3000)
  receiptd serve

  # Explicit config file
  receiptd serve --config /etc/receiptd/receiptd.yaml`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// detectCmd runs one discovery pass and prints the ranked candidates
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Discover attached receipt printers",
	Long: `Run one discovery pass and print the ranked candidate list.

Each candidate carries a 0-100 confidence score and the evidence notes that
produced it. The same physical printer can appear twice when it is reachable
both through a device node and through USB bus enumeration; pick the device
node entry for printing.`,
	Example: `  # List candidates
  receiptd detect

  # Show the evidence notes behind each score
  receiptd detect --notes

  # Machine-readable output
  receiptd detect --json

  # Pick a printer interactively and send it a test page
  receiptd detect --pick`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&outputJSON, "json", false, "Output candidates as JSON")
	detectCmd.Flags().BoolVar(&showNotes, "notes", false, "Show evidence notes per candidate")
	detectCmd.Flags().BoolVar(&interactive, "pick", false, "Interactively pick a printer and test-print it")
	detectCmd.Flags().BoolVar(&noSerial, "no-serial", false, "Skip generic serial-port namespaces")
}

func runDetect(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	opts := discovery.DefaultOptions()
	opts.IncludeSerial = !noSerial
	provider := discovery.NewProvider(opts)

	if interactive {
		return runPick(provider)
	}

	cands, err := provider.Discover(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not enumerate printers on this host: %w", err)
	}

	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cands)
	}

	fmt.Print(ui.RenderCandidates(cands, showNotes))
	return nil
}

func runPick(provider *discovery.Provider) error {
	choice, err := ui.PickPrinter(provider)
	if err != nil {
		return fmt.Errorf("could not enumerate printers on this host: %w", err)
	}
	if choice == nil {
		fmt.Println("No printer selected.")
		return nil
	}

	fmt.Printf("Selected %s\n", choice.Summary())
	return testPrint(choice.Transport)
}

// printCmd sends a test page to an explicit device
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Send a test page to a printer device node",
	Example: `  receiptd print --device /dev/usb/lp0
  receiptd print --device /dev/ttyUSB0`,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&devicePath, "device", "", "Printer device node path")
	_ = printCmd.MarkFlagRequired("device")

	statusCmd.Flags().StringVar(&devicePath, "device", "", "Printer device node path")
	_ = statusCmd.MarkFlagRequired("device")
}

func runPrint(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	return testPrint(discovery.PrinterNode(devicePath))
}

func testPrint(t discovery.Transport) error {
	adapter, err := printer.OpenTransport(t)
	if err != nil {
		return err
	}
	defer adapter.Close()

	if err := printer.PrintTestPage(adapter, t.String()); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle.Render("Test page sent."))
	return nil
}

// statusCmd polls real-time printer status
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query real-time printer status",
	Long: `Poll the printer's real-time status over its device node.

The printer answers DLE EOT requests out of band, so this works even while
other jobs are spooled.`,
	Example: `  receiptd status --device /dev/usb/lp0`,
	RunE:    runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	adapter, err := printer.OpenNode(devicePath)
	if err != nil {
		return err
	}
	defer adapter.Close()

	st, err := printer.QueryStatus(adapter)
	if err != nil {
		return err
	}

	fmt.Printf("Printer online: %v\n", st.Online)
	fmt.Printf("Paper out:      %v\n", st.PaperOut)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("receiptd %s (commit: %s)\n", version.Version, version.Commit)
	},
}
