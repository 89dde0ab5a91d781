package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"corebanking/app"
	"corebanking/logging"
	"corebanking/store"
)

var (
	// Shared institution instance for the whole command tree.
	bank *app.Bank

	errorLog      *logging.FileLogger
	snapshotStore store.SnapshotStore
)

const defaultRoutingCode = 10020030

var rootCmd = &cobra.Command{
	Use:   "bank-cli",
	Short: "A CLI for the in-memory retail banking core",
	Long: `bank-cli manages accounts of a single institution: checking and
savings accounts, deposits, withdrawals, internal transfers and
aggregate reports.

State lives in memory only; use the repl command for a session that
spans multiple operations.`,
	// Errors are printed once by fail; keep cobra from repeating them.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	errorLog = logging.NewFileLogger("log.txt")
	snapshotStore = store.NewInMemorySnapshotStore()

	var err error
	bank, err = app.NewBank(defaultRoutingCode, errorLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(replCmd)
}

// fail prints the error for the user. The process keeps running so the
// repl survives failed commands; one-shot invocations exit through the
// command's RunE error path instead.
func fail(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Starts a read-eval-print loop so that accounts created in one command are still there for the next.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bank-cli repl. Type 'exit' or 'quit' to leave.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "exit" || input == "quit" {
				break
			}
			if input == "" {
				continue
			}

			rootCmd.SetArgs(strings.Fields(input))
			// Errors are already printed by fail; the loop continues.
			_ = rootCmd.Execute()
		}

		fmt.Println("Leaving repl.")
	},
}
