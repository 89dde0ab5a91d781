package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"corebanking/app"
	"corebanking/domain"
	"corebanking/events"
	"corebanking/shared"
)

// consoleObserver prints every account notification it receives. It plays
// the role a display front-end would: subscribed to the stream instead of
// polling account state.
type consoleObserver struct{}

func (consoleObserver) Notify(event events.Event) {
	base := event.GetBase()
	switch e := event.(type) {
	case events.BalanceChangedEvent:
		fmt.Printf("  [notify] account %d balance: %s -> %s %s\n",
			base.AccountNumber, e.OldBalance.StringFixed(2), e.NewBalance.StringFixed(2), e.Currency)
	case events.LockStateChangedEvent:
		state := "unlocked"
		if e.Locked {
			state = "locked"
		}
		fmt.Printf("  [notify] account %d is now %s\n", base.AccountNumber, state)
	case events.OwnerChangedEvent:
		fmt.Printf("  [notify] account %d owner: %s -> %s\n", base.AccountNumber, e.OldOwner, e.NewOwner)
	case events.CurrencyChangedEvent:
		fmt.Printf("  [notify] account %d currency: %s -> %s\n", base.AccountNumber, e.OldCurrency, e.NewCurrency)
	default:
		fmt.Printf("  [notify] account %d: %s\n", base.AccountNumber, base.Type)
	}
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted scenario through the whole core",
	Run: func(cmd *cobra.Command, args []string) {
		observer := &consoleObserver{}

		anna := domain.NewCustomer("Anna", "Meier", "Hauptstr. 1, Berlin", date(1990, 4, 12))
		ben := domain.NewCustomer("Ben", "Schulz", "Ringweg 7, Hamburg", date(1985, 11, 3))

		fmt.Println("[1] Opening accounts...")
		annaNr, err := bank.CreateAccount(domain.NewCheckingFactory(decimal.NewFromInt(500)), anna)
		if err != nil {
			log.Fatalf("opening Anna's account: %v", err)
		}
		benNr, err := bank.CreateAccount(domain.NewCheckingFactory(decimal.NewFromInt(500)), ben)
		if err != nil {
			log.Fatalf("opening Ben's account: %v", err)
		}
		savingsNr, err := bank.CreateAccount(domain.SavingsFactory{}, anna)
		if err != nil {
			log.Fatalf("opening Anna's savings account: %v", err)
		}
		for _, nr := range []int64{annaNr, benNr, savingsNr} {
			account, _ := bank.Account(nr)
			account.Subscribe(observer)
		}

		fmt.Println("\n[2] Deposits and withdrawals...")
		must(bank.Deposit(annaNr, decimal.NewFromInt(20)))
		report(bank.Withdraw(annaNr, decimal.NewFromInt(30)))  // into the overdraft
		report(bank.Withdraw(annaNr, decimal.NewFromInt(530))) // beyond the overdraft: refused

		fmt.Println("\n[3] Savings cap...")
		must(bank.Deposit(savingsNr, decimal.NewFromInt(2500)))
		report(bank.Withdraw(savingsNr, decimal.NewFromInt(1800)))
		report(bank.Withdraw(savingsNr, decimal.NewFromInt(300))) // over the monthly cap: refused

		fmt.Println("\n[4] Transfers...")
		must(bank.Deposit(benNr, decimal.NewFromInt(100)))
		report(bank.Transfer(benNr, annaNr, decimal.NewFromInt(50), "rent"))
		report(bank.Transfer(benNr, savingsNr, decimal.NewFromInt(10), "savings")) // savings cannot receive: refused

		fmt.Println("\n[5] Locking overdrawn accounts...")
		bank.LockOverdrawnAccounts()
		report(bank.Transfer(annaNr, benNr, decimal.NewFromInt(5), "beer")) // Anna is locked: refused

		fmt.Println("\n[6] Currency switch...")
		account, _ := bank.Account(benNr)
		must(account.SetCurrency(shared.BGN))

		fmt.Println("\n[7] Reports...")
		fmt.Print(bank.Summary())
		fmt.Print(bank.CustomerBirthdayReport())

		fmt.Println("\n[8] Snapshot, mutate, restore...")
		snapshot, err := bank.Snapshot()
		if err != nil {
			log.Fatalf("snapshotting bank: %v", err)
		}
		if err := snapshotStore.SaveSnapshot(snapshot); err != nil {
			log.Fatalf("saving snapshot: %v", err)
		}
		must(bank.Deposit(benNr, decimal.NewFromInt(1000)))

		saved, found, err := snapshotStore.GetLatestSnapshot(bank.RoutingCode())
		if err != nil || !found {
			log.Fatalf("loading snapshot: found=%v err=%v", found, err)
		}
		restored, err := app.RestoreBank(saved, errorLog)
		if err != nil {
			log.Fatalf("restoring bank: %v", err)
		}
		liveBalance, _ := bank.Balance(benNr)
		restoredBalance, _ := restored.Balance(benNr)
		fmt.Printf("Ben's balance live: %s, in restored snapshot: %s\n",
			liveBalance.StringFixed(2), restoredBalance.StringFixed(2))

		fmt.Println("\nDemo complete.")
	},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func must(err error) {
	if err != nil {
		log.Fatalf("demo step failed: %v", err)
	}
}

func report(ok bool, err error) {
	if err != nil {
		log.Fatalf("demo step failed: %v", err)
	}
	if ok {
		fmt.Println("  -> done")
	} else {
		fmt.Println("  -> refused")
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
