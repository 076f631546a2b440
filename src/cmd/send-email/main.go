// in case you need to create an entrypoint with multiple subprograms
package main

import (
	"flag"
	"fmt"
	"os"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/bootstrap"
	"remote-report/src/pkg/email"
	"remote-report/src/pkg/util"
)

/*
Pick provider and use it to send a test email to the given addresses.
Optionally attach a file (for example yesterday's workbook) to check attachment handling.
*/
func testProvider(subprogram string, flags []string) {
	subprogramCmd := flag.NewFlagSet(subprogram, flag.ExitOnError)
	configPath := subprogramCmd.String("config", "./cfg/config.json", "Path to your configuration file.")

	provider := subprogramCmd.String("provider", "smtp", "Provider to use: sendgrid, mailgun, ses or smtp")
	senderAddress := subprogramCmd.String("sender", "", "Sender's address")
	recipientAddress := subprogramCmd.String("recipient", "", "Comma separated recipient addresses")
	ccAddress := subprogramCmd.String("cc", "", "Comma separated cc addresses")
	subject := subprogramCmd.String("subject", "Test subject", "Subject of an email")
	emailHtmlFilePath := subprogramCmd.String("html", "./tmp/email.html", "Html body of the email")
	emailTextFilePath := subprogramCmd.String("text", "./tmp/email.txt", "Plain text body of the email")
	attachment := subprogramCmd.String("attachment", "", "Comma separated file paths to attach")
	dryRun := subprogramCmd.Bool("dry-run", false, "Only log the email")

	xerr.QuitIfError(subprogramCmd.Parse(flags), "Unable to subprogramCmd.Parse")
	bootstrap.InitializePackages(*configPath)

	util.RequiredFlag(senderAddress, "sender")
	util.RequiredFlag(recipientAddress, "recipient")
	util.RequiredFlag(provider, "provider")
	util.EnsureFlags()

	htmlFileContentBytes, err := os.ReadFile(*emailHtmlFilePath)
	xerr.QuitIfError(err, fmt.Sprintf("Unable to read file '%s'", *emailHtmlFilePath))
	tl.Log(tl.Verbose, palette.BlueDim, "Full Email:\n```\n%s\n```", htmlFileContentBytes)

	textFileContentBytes, err := os.ReadFile(*emailTextFilePath)
	xerr.QuitIfError(err, fmt.Sprintf("Unable to read file '%s'", *emailTextFilePath))
	tl.Log(tl.Verbose, palette.BlueDim, "Full Email:\n```\n%s\n```", textFileContentBytes)

	options := &email.MessageOptions{
		CC:          util.SplitList(*ccAddress),
		Attachments: util.SplitList(*attachment),
	}

	sendEmails := !*dryRun
	e := email.SendMessage(
		email.Provider(*provider), &sendEmails, *senderAddress, util.SplitList(*recipientAddress),
		*subject, string(textFileContentBytes), string(htmlFileContentBytes), options,
	)
	e.QuitIf("error")
}

func main() {
	if len(os.Args) < 2 {
		tl.Log(tl.Error, palette.Red, "Usage: %s", "go run src/cmd/send-email/main.go test-provider [flags]")
		os.Exit(1)
	}
	subprogram := os.Args[1]
	flags := os.Args[2:]

	switch subprogram {
	case "test-provider":
		testProvider(subprogram, flags)
	default:
		tl.Log(tl.Error, palette.Red, "Unknown subprogram: %s", subprogram)
		os.Exit(1)
	}
}
