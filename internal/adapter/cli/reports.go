package cli

import (
	"strconv"

	response "github.com/aicedeno1/quotations-business-rules/internal/adapter/http/dto/response"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/analytics"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newRevenueCommand(a *app) *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Total and average quotation revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.reports.RevenueAnalysis(cmd.Context(), entities.RevenueScope(scope))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response.FromRevenueAnalysis(res))
		},
	}
	cmd.Flags().StringVar(&scope, "scope", string(entities.RevenueScopeAll), "all or completed")
	return cmd
}

func newDiscountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discount <id>",
		Short: "Discount impact for one quotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return &analytics.InvalidArgumentError{Field: "id", Value: args[0], Reason: "must be a positive integer"}
			}
			res, err := a.reports.DiscountAnalysis(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response.FromDiscountAnalysis(res))
		},
	}
}

func newChefsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chefs",
		Short: "Profitability grouped by chef",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.reports.ChefProfitability(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response.FromChefProfitability(res))
		},
	}
}

func newTaxesCommand(a *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "taxes",
		Short: "Tax summary over an optional inclusive date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.reports.TaxSummary(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response.FromTaxSummary(res))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")
	return cmd
}
