package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/admission"
	"github.com/techcomputer/portal/core/dashboard"
	"github.com/techcomputer/portal/core/payment"
	"github.com/techcomputer/portal/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc  *user.Service
	admSvc  *admission.Service
	paySvc  *payment.Service
	console *payment.Console
	dashSvc *dashboard.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL            - sign in; the password is prompted next")
	fmt.Println("  logout                        - drop the stored session")
	fmt.Println("  whoami                        - show the signed-in account")
	fmt.Println("  stats                         - centre-wide totals")
	fmt.Println("  admissions                    - list all admission applications")
	fmt.Println("  payments [-search TERM]       - list payments, optionally filtered")
	fmt.Println("  verify -id PAYMENT_ID         - verify a pending payment")
	fmt.Println("  reject -id PAYMENT_ID         - reject a pending payment")
	fmt.Println("  delete -id PAYMENT_ID         - delete a payment record")
	fmt.Println("  methods                       - list receiving wallet numbers")
	fmt.Println("  addmethod -name NAME -number MOBILE -type TYPE - add a receiving wallet")
	fmt.Println("  delmethod -id METHOD_ID       - remove a receiving wallet")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The account's email. The password will be prompted next.")

	paymentsCmd := flag.NewFlagSet("payments", flag.ExitOnError)
	paymentsSearch := paymentsCmd.String("search", "", "Filter by buyer name, transaction id or sender mobile.")

	verifyCmd := flag.NewFlagSet("verify", flag.ExitOnError)
	verifyID := verifyCmd.String("id", "", "The payment's id.")

	rejectCmd := flag.NewFlagSet("reject", flag.ExitOnError)
	rejectID := rejectCmd.String("id", "", "The payment's id.")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteID := deleteCmd.String("id", "", "The payment's id.")

	addMethodCmd := flag.NewFlagSet("addmethod", flag.ExitOnError)
	addMethodName := addMethodCmd.String("name", "", "The wallet provider, e.g. bKash.")
	addMethodNumber := addMethodCmd.String("number", "", "The receiving mobile number.")
	addMethodType := addMethodCmd.String("type", "personal", "The account type.")

	delMethodCmd := flag.NewFlagSet("delmethod", flag.ExitOnError)
	delMethodID := delMethodCmd.String("id", "", "The wallet's id.")

	ctx := context.Background()

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginEmail, string(pwd))
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "stats":
		return cli.stats(ctx)
	case "admissions":
		return cli.admissions(ctx)
	case "payments":
		if err := paymentsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.payments(ctx, *paymentsSearch)
	case "verify":
		if err := verifyCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *verifyID == "" {
			verifyCmd.Usage()
			return errHelp
		}
		return cli.actOnPayment(ctx, cli.console.Verify, *verifyID)
	case "reject":
		if err := rejectCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *rejectID == "" {
			rejectCmd.Usage()
			return errHelp
		}
		return cli.actOnPayment(ctx, cli.console.Reject, *rejectID)
	case "delete":
		if err := deleteCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *deleteID == "" {
			deleteCmd.Usage()
			return errHelp
		}
		return cli.actOnPayment(ctx, cli.console.Delete, *deleteID)
	case "methods":
		return cli.methods(ctx)
	case "addmethod":
		if err := addMethodCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addMethodName == "" || *addMethodNumber == "" {
			addMethodCmd.Usage()
			return errHelp
		}
		return cli.addMethod(ctx, *addMethodName, *addMethodNumber, *addMethodType)
	case "delmethod":
		if err := delMethodCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *delMethodID == "" {
			delMethodCmd.Usage()
			return errHelp
		}
		return cli.removeMethod(ctx, *delMethodID)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, email, pwd string) error {
	sess, err := cli.usrSvc.Login(ctx, user.Login{Email: email, Password: pwd})
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s> (%s)\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.usrSvc.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func (cli *commandLine) whoami() error {
	sess, err := cli.usrSvc.Current()
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func (cli *commandLine) stats(ctx context.Context) error {
	stats, err := cli.dashSvc.AdminStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Students:   %d\n", stats.TotalStudents)
	fmt.Printf("Admissions: %d\n", stats.TotalAdmissions)
	fmt.Printf("Income:     %d\n", stats.TotalIncome)
	return nil
}

func (cli *commandLine) admissions(ctx context.Context) error {
	admissions, err := cli.admSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAPPLICANT\tCOURSE\tSTATUS")
	for _, adm := range admissions {
		var applicant, crs string
		if adm.User != nil {
			applicant = adm.User.Name
		}
		if adm.Course != nil {
			crs = adm.Course.Title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", adm.ID, applicant, crs, adm.Status)
	}
	return w.Flush()
}

func (cli *commandLine) payments(ctx context.Context, search string) error {
	payments, err := cli.console.List(ctx)
	if err != nil {
		return err
	}
	return printPayments(payment.Filter(payments, search))
}

// actOnPayment runs a console mutation (verify/reject/delete) and prints the
// re-fetched list. A declined prompt is not an error worth a stack trace.
func (cli *commandLine) actOnPayment(ctx context.Context, act func(context.Context, string) ([]payment.Payment, error), id string) error {
	payments, err := act(ctx, id)
	if err != nil {
		if err == core.ErrDeclined {
			fmt.Println("Cancelled.")
			return nil
		}
		return err
	}
	fmt.Println("Done.")
	return printPayments(payments)
}

func (cli *commandLine) methods(ctx context.Context) error {
	methods, err := cli.paySvc.Methods(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tNUMBER\tTYPE")
	for _, m := range methods {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.MethodName, m.Number, m.AccountType)
	}
	return w.Flush()
}

func (cli *commandLine) addMethod(ctx context.Context, name, number, accountType string) error {
	method, err := cli.paySvc.AddMethod(ctx, payment.NewPaymentMethod{
		MethodName:  name,
		Number:      number,
		AccountType: accountType,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %s %s (%s)\n", method.MethodName, method.Number, method.ID)
	return nil
}

func (cli *commandLine) removeMethod(ctx context.Context, id string) error {
	if err := cli.paySvc.RemoveMethod(ctx, id); err != nil {
		if err == core.ErrDeclined {
			fmt.Println("Cancelled.")
			return nil
		}
		return err
	}
	fmt.Println("Removed.")
	return nil
}

func printPayments(payments []payment.Payment) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBUYER\tTRX ID\tSENDER\tTOTAL\tSTATUS")
	for _, p := range payments {
		var buyer string
		if p.User != nil {
			buyer = p.User.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, buyer, p.TransactionID, p.SenderMobile, p.TotalAmount, p.Status)
	}
	return w.Flush()
}
