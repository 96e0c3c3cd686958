package cmd

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chart-market-tools/internal/analysis"
	"chart-market-tools/internal/pipeline"
)

type SendEmailConfig struct {
	From         string
	To           string
	DryRun       bool
	SMTPUsername string
	SMTPPassword string
}

var emailCmd = &cobra.Command{
	Use:   "email <address> [from] [to (optional)]",
	Short: "Emails the market-structure summary",
	Long: `Emails the KPI summary and artist leaderboard for the filtered dataset
to the specified address. Optional date arguments can be provided at the
end (e.g. '2023-01' or '2023-01 2023-06').`,
	Args: cobra.RangeArgs(1, 3),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		config := SendEmailConfig{
			From:         viper.GetString("from"),
			To:           args[0],
			DryRun:       viper.GetBool("dryRun"),
			SMTPUsername: viper.GetString("smtp_username"),
			SMTPPassword: viper.GetString("smtp_password"),
		}
		err := sendEmail(config, args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func sendEmail(config SendEmailConfig, dateArgs []string) error {
	view, err := loadFiltered(dateArgs)
	if err != nil {
		return err
	}

	subject, out, err := generateEmailContent(view)
	if err != nil {
		return err
	}

	if config.DryRun {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, out)
		return nil
	}

	if config.SMTPUsername == "" || config.SMTPPassword == "" {
		return fmt.Errorf("smtp_username and smtp_password must be set in order to send emails")
	}

	msg := "From: chart-market-tools <" + config.From + ">\r\n" +
		"To: " + config.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		out

	auth := smtp.PlainAuth("", config.SMTPUsername, config.SMTPPassword, "smtp.gmail.com")
	if err := smtp.SendMail("smtp.gmail.com:587", auth, config.From, []string{config.To}, []byte(msg)); err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	return nil
}

func generateEmailContent(view *pipeline.Dataset) (subject string, body string, err error) {
	out := `
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
</style>
  </head>
  <body>
`
	kpis, _, err := analysis.ComputeKPIs(view.Tracks, view.ArtistRows)
	if noData(err) {
		out += "<div>No data for the current filter.</div>\n</body>\n</html>\n"
		return "Chart market report", out, nil
	}
	if err != nil {
		return "", "", fmt.Errorf("computing KPIs: %w", err)
	}

	out += "<h2>Market structure KPIs</h2>\n<ul>\n"
	out += fmt.Sprintf("<li>Artist Concentration Index: %.3f</li>\n", kpis.ACI)
	out += fmt.Sprintf("<li>Top 5 Artist Share: %.1f%%</li>\n", kpis.Top5Share*100)
	out += fmt.Sprintf("<li>Unique Artists: %d</li>\n", kpis.UniqueArtists)
	out += fmt.Sprintf("<li>Collaboration Ratio: %.1f%%</li>\n", kpis.CollaborationRatio*100)
	out += fmt.Sprintf("<li>Explicit Content Share: %.1f%%</li>\n", kpis.ExplicitShare*100)
	out += fmt.Sprintf("<li>Content Variety Index: %.2f</li>\n", kpis.ContentVariety)
	out += "</ul>\n"

	leaderboard, err := leaderboardAnalysis(view, 15)
	if err != nil {
		return "", "", fmt.Errorf("building leaderboard: %w", err)
	}
	out += "<h2>Artist dominance leaderboard</h2>\n"
	out += leaderboard.html()

	out += `
  </body>
</html>
`
	subject = fmt.Sprintf("Chart market report: %d tracks, %d artists", len(view.Tracks), kpis.UniqueArtists)
	return subject, out, nil
}
