// File: farmguru/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"farmguru/client"
	"farmguru/config"
	"farmguru/models"
	"farmguru/services/advisor"
	"farmguru/utils"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "farmguru",
		Short:         "Command-line client for the Farm-Guru agricultural assistant",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			utils.InitializeLogger()
		},
	}

	root.AddCommand(
		newAskCmd(),
		newWeatherCmd(),
		newMarketCmd(),
		newUploadCmd(),
		newSchemesCmd(),
		newChemRecoCmd(),
		newHealthCmd(),
	)
	return root
}

func newAskCmd() *cobra.Command {
	var lang, imagePath string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant a question, optionally grounded in a crop image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv := advisor.New(client.New())
			question := strings.Join(args, " ")

			var (
				resp *models.QueryResponse
				err  error
			)
			if imagePath != "" {
				f, openErr := os.Open(imagePath)
				if openErr != nil {
					return openErr
				}
				defer f.Close()
				resp, err = adv.AskWithImage(cmd.Context(), question, lang, filepath.Base(imagePath), f)
			} else {
				resp, err = adv.Ask(cmd.Context(), question, lang)
			}
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "answer language (en or hi)")
	cmd.Flags().StringVar(&imagePath, "image", "", "crop image to ground the question in")
	return cmd
}

func newWeatherCmd() *cobra.Command {
	var state, district string
	var days int

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch the forecast and irrigation recommendation for a district",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New()
			if days > 0 {
				resp, err := api.ExtendedForecast(cmd.Context(), state, district, days)
				if err != nil {
					return err
				}
				return printJSON(resp)
			}
			resp, err := api.GetWeather(cmd.Context(), state, district)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "state name")
	cmd.Flags().StringVar(&district, "district", "", "district name")
	cmd.Flags().IntVar(&days, "days", 0, "request an extended forecast for this many days")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("district")
	return cmd
}

func newMarketCmd() *cobra.Command {
	var commodity, mandi, mandiState string
	var analysisDays int
	var listCommodities, listMandis bool

	cmd := &cobra.Command{
		Use:   "market",
		Short: "Fetch commodity prices, trading signals and market analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New()
			ctx := cmd.Context()

			switch {
			case listCommodities:
				resp, err := api.Commodities(ctx)
				if err != nil {
					return err
				}
				return printJSON(resp)
			case listMandis:
				resp, err := api.Mandis(ctx, mandiState)
				if err != nil {
					return err
				}
				return printJSON(resp)
			case analysisDays > 0:
				resp, err := api.MarketAnalysis(ctx, commodity, analysisDays)
				if err != nil {
					return err
				}
				return printJSON(resp)
			default:
				resp, err := api.GetMarketData(ctx, commodity, mandi)
				if err != nil {
					return err
				}
				return printJSON(resp)
			}
		},
	}
	cmd.Flags().StringVar(&commodity, "commodity", "", "commodity name, e.g. wheat")
	cmd.Flags().StringVar(&mandi, "mandi", "", "mandi name, e.g. Bengaluru")
	cmd.Flags().StringVar(&mandiState, "state", "", "state filter for --list-mandis")
	cmd.Flags().IntVar(&analysisDays, "analysis", 0, "fetch a price analysis over this many days instead")
	cmd.Flags().BoolVar(&listCommodities, "list-commodities", false, "list available commodities")
	cmd.Flags().BoolVar(&listMandis, "list-mandis", false, "list known mandis")
	return cmd
}

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <image>",
		Short: "Upload a crop image for classification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			resp, err := client.New().UploadImage(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	return cmd
}

func newSchemesCmd() *cobra.Command {
	var req models.PolicyMatchRequest
	var listAll bool
	var limit int

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "Match government schemes against a farmer profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New()
			if listAll {
				resp, err := api.Schemes(cmd.Context(), req.State, req.Crop, limit)
				if err != nil {
					return err
				}
				return printJSON(resp)
			}
			resp, err := api.MatchPolicies(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().StringVar(&req.State, "state", "", "state name")
	cmd.Flags().StringVar(&req.Crop, "crop", "", "crop grown")
	cmd.Flags().Float64Var(&req.LandSize, "land-size", 0, "land holding in hectares")
	cmd.Flags().StringVar(&req.FarmerType, "farmer-type", "", "small, marginal or large")
	cmd.Flags().BoolVar(&listAll, "list", false, "list the scheme catalogue instead of matching")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum schemes to list")
	return cmd
}

func newChemRecoCmd() *cobra.Command {
	var req models.ChemRecoRequest
	var imagePath string

	cmd := &cobra.Command{
		Use:   "chemreco",
		Short: "Get conservative treatment guidance for a crop symptom",
		RunE: func(cmd *cobra.Command, args []string) error {
			adv := advisor.New(client.New())

			if imagePath != "" {
				f, err := os.Open(imagePath)
				if err != nil {
					return err
				}
				defer f.Close()
				resp, err := adv.DiagnoseWithImage(cmd.Context(), req, filepath.Base(imagePath), f)
				if err != nil {
					return err
				}
				return printJSON(resp)
			}

			resp, err := adv.Diagnose(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().StringVar(&req.Crop, "crop", "", "affected crop")
	cmd.Flags().StringVar(&req.Symptom, "symptom", "", "observed symptom")
	cmd.Flags().StringVar(&req.Severity, "severity", "", "mild, moderate or severe")
	cmd.Flags().StringVar(&req.AffectedArea, "area", "", "leaves, stem, fruit or root")
	cmd.Flags().StringVar(&imagePath, "image", "", "crop image to ground the diagnosis in")
	_ = cmd.MarkFlagRequired("crop")
	_ = cmd.MarkFlagRequired("symptom")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.New().Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
