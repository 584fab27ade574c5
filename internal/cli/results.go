package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectra/analysis"
)

var resultsJSON bool

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage stored analysis results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list [sample]",
	Short: "List stored results, optionally for one sample",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResultsList,
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored result",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsShow,
}

var resultsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored result",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsDelete,
}

func init() {
	resultsCmd.PersistentFlags().BoolVar(&resultsJSON, "json", false, "print results as JSON")
	resultsCmd.AddCommand(resultsListCmd, resultsShowCmd, resultsDeleteCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runResultsList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var sample string
	if len(args) == 1 {
		sample = args[0]
	}
	recs, err := st.ListRecords(cmd.Context(), sample)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resultsJSON {
		return writeJSON(out, recs)
	}
	if len(recs) == 0 {
		cmd.Println("No stored results.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tSample\tCreated\tOutcome\tPeaks\tR²\n")
	fmt.Fprintf(tw, "--\t------\t-------\t-------\t-----\t--\n")
	for _, r := range recs {
		r2 := "-"
		if r.Fitting != nil {
			r2 = fmt.Sprintf("%.4f", r.Fitting.RSquared)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.SampleID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Outcome, len(r.Peaks), r2)
	}
	return tw.Flush()
}

func runResultsShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid result id %q: %w", args[0], err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.GetRecord(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resultsJSON {
		return writeJSON(out, rec)
	}

	fmt.Fprintf(out, "Result %s\n", rec.ID)
	fmt.Fprintf(out, "Created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Model: %s\n", rec.Config.Model)
	res := analysis.Result{
		Peaks:      rec.Peaks,
		Fitting:    rec.Fitting,
		Statistics: rec.Statistics,
		Outcome:    rec.Outcome,
	}
	return printResult(out, rec.SampleID, res)
}

func runResultsDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid result id %q: %w", args[0], err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteRecord(cmd.Context(), id); err != nil {
		return err
	}
	cmd.Printf("Deleted result %s\n", id)
	return nil
}

