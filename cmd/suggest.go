package main

import (
	"context"
	"fmt"
	"os"

	"domainsuggest/internal/api/handler/v1handler"
	"domainsuggest/internal/config"
	"domainsuggest/internal/engine"
	"domainsuggest/internal/suggester"
	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/logger"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// suggestCommand constructs the 'suggest' subcommand that runs the engine
// locally and prints the result as JSON. Nothing is stored.
func suggestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Runs the suggestion engine locally and prints the result",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			name, _ := cmd.Flags().GetString("name")
			company, _ := cmd.Flags().GetString("company")
			role, _ := cmd.Flags().GetString("role")
			seed, _ := cmd.Flags().GetUint64("seed")
			demo, _ := cmd.Flags().GetBool("demo")
			pricing, _ := cmd.Flags().GetStringSlice("pricing")

			options := suggester.NewOptions(cfg)
			if seed != 0 {
				options.NewSource = func() engine.RandomSource { return engine.SeededSource(seed) }
			}
			// anonymous runs, demo and pricing never reach the storage
			sug := suggester.New(nil, options)

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)

			switch {
			case demo:
				res, err := sug.Demo(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not run demo", zap.Error(err))
				}
				v1handler.EncodeDemo(e, res)
			case cmd.Flags().Changed("pricing"):
				res, err := sug.PricingReport(ctx, pricing)
				if err != nil {
					logger.Fatal(ctx, "could not price domains", zap.Error(err))
				}
				v1handler.EncodePricingReport(e, res)
			default:
				res, err := sug.Suggest(ctx, nil, domain.Applicant{
					Name:          name,
					TargetCompany: company,
					TargetRole:    role,
				})
				if err != nil {
					logger.Fatal(ctx, "could not suggest domains", zap.Error(err))
				}
				v1handler.EncodeSuggestion(e, *res)
			}

			fmt.Fprintln(os.Stdout, string(e.Bytes())) //nolint: forbidigo
		},
	}

	cmd.Flags().String("name", "", "Applicant name")
	cmd.Flags().String("company", "", "Target company")
	cmd.Flags().String("role", "", "Target role (optional)")
	cmd.Flags().Uint64("seed", 0, "Seed of the availability simulation; 0 is random")
	cmd.Flags().Bool("demo", false, "Run the demo pathway instead")
	cmd.Flags().StringSlice("pricing", nil, "Quote these domains instead; empty quotes the sample set")

	return cmd
}
