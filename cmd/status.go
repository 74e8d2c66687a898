package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/jumppad-labs/rdsecho/pkg/clients/dns"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/spf13/cobra"
)

func newStatusCmd(setup setupFunc, out io.Writer, l logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the managed instances and their stage",
		Long: `Lists every instance tagged as managed for the configured name, newest first, with
its stage, status and endpoint. The instance the CNAME points at is marked with *.`,
		Args:         cobra.NoArgs,
		RunE:         newStatusCmdFunc(setup, out, l),
		SilenceUsage: true,
	}
}

func newStatusCmdFunc(setup setupFunc, out io.Writer, l logger.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context())
		if err != nil {
			return err
		}

		ms, err := e.locator.List(cmd.Context())
		if err != nil {
			return err
		}

		target := ""
		cname := e.config.Promote.CNAME

		z, err := dns.FindHostedZone(cmd.Context(), e.clients.Route53, cname)
		if err == nil {
			var rs *types.ResourceRecordSet
			rs, err = dns.FindRecord(cmd.Context(), e.clients.Route53, aws.ToString(z.Id), cname, types.RRTypeCname)
			if err == nil && len(rs.ResourceRecords) > 0 {
				target = dns.Fqdn(aws.ToString(rs.ResourceRecords[0].Value))
			}
		}

		if err != nil {
			l.Warn("Unable to read CNAME", "cname", cname, "error", err)
		}

		sort.SliceStable(ms, func(i, j int) bool {
			if ms[i].Created == nil || ms[j].Created == nil {
				return ms[j].Created == nil && ms[i].Created != nil
			}

			return ms[i].Created.After(*ms[j].Created)
		})

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()

		table := uitable.New()
		table.MaxColWidth = 80
		table.AddRow(
			"",
			headerText.Render("INSTANCE"),
			headerText.Render("STAGE"),
			headerText.Render("STATUS"),
			headerText.Render("CREATED"),
			headerText.Render("ENDPOINT"),
		)

		for _, m := range ms {
			mark := ""
			if target != "" && m.Endpoint != nil && dns.Fqdn(*m.Endpoint) == target {
				mark = green("*")
			}

			stage := "<none>"
			if s, ok := m.Stage(e.family); ok {
				stage = s.String()
			}

			switch echo.Stage(stage) {
			case echo.StagePromoted:
				stage = green(stage)
			case echo.StageForgotten, echo.StageRetired:
				stage = dim(stage)
			default:
				stage = yellow(stage)
			}

			created := "-"
			if m.Created != nil {
				created = m.Created.UTC().Format(time.RFC3339)
			}

			table.AddRow(mark, m.ID, stage, m.Status, created, aws.ToString(m.Endpoint))
		}

		fmt.Fprintln(out, table)
		fmt.Fprintf(out, "\n%s %s -> %s\n", grayText.Render("CNAME"), cname, target)

		return nil
	}
}
