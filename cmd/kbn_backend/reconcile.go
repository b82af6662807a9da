package main

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/core/services"
	"github.com/SscSPs/kbn_backend/internal/dto"
	"github.com/SscSPs/kbn_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/kbn_backend/pkg/database"
	"github.com/spf13/cobra"
)

func reconcileCmd(a *app) *cobra.Command {
	var fromDate, toDate string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Print the reconciliation report for a date range as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := domain.ParseCalendarDate(fromDate)
			if err != nil {
				return fmt.Errorf("invalid --from %q: %w", fromDate, err)
			}
			to, err := domain.ParseCalendarDate(toDate)
			if err != nil {
				return fmt.Errorf("invalid --to %q: %w", toDate, err)
			}

			dbPool, err := database.NewPgxPool(cmd.Context(), a.cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(dbPool)

			svc := services.NewReconciliationService(pgsql.NewRepositoryProvider(dbPool).LedgerRepo)
			report, err := svc.ReconciliationReport(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToReconciliationReportResponse(report))
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "first day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "last day of the range (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
