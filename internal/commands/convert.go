package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"goldconv/internal/app"
	"goldconv/internal/domain"
	"goldconv/internal/quote"

	"github.com/spf13/cobra"
)

var (
	convertDate     string
	convertCurrency string
	convertKarat    int
	convertGrams    float64
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Price an amount of gold once",
	Long: `Fetch the gold price for a date and print the value of the given weight and
purity in the chosen currency.

Examples:
  goldconv convert --date 2025-04-01 --grams 10
  goldconv convert --date 2025-04-01 --currency TRY --karat 22 --grams 2.5`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertDate, "date", "d", "", "Date, YYYY-MM-DD")
	convertCmd.Flags().StringVar(&convertCurrency, "currency", domain.USD, "Target currency (AZN, TRY, USD)")
	convertCmd.Flags().IntVarP(&convertKarat, "karat", "k", 24, "Purity in karats (24, 22, 18, 14)")
	convertCmd.Flags().Float64VarP(&convertGrams, "grams", "g", 0, "Weight in grams")
	_ = convertCmd.MarkFlagRequired("date")
	_ = convertCmd.MarkFlagRequired("grams")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	validator := quote.NewValidator(domain.SupportedCurrencies, domain.SupportedKarats)
	req, err := buildRequest(validator, convertDate, convertCurrency, convertKarat, convertGrams)
	if err != nil {
		return err
	}

	appCfg, err := app.Setup(cfgPath)
	if err != nil {
		return err
	}
	fetcher, err := app.NewFetcher(appCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := quote.NewService(ctx, fetcher, nil, domain.USD)
	res, err := svc.QuickConvert(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

func buildRequest(validator *quote.RequestValidator, rawDate, currency string, karat int, grams float64) (domain.ConversionRequest, error) {
	date, err := validator.ParseDate(rawDate)
	if err != nil {
		return domain.ConversionRequest{}, err
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if err = validator.ValidateCurrency(currency); err != nil {
		return domain.ConversionRequest{}, err
	}
	req := domain.ConversionRequest{AmountGrams: grams, Karat: karat, Currency: currency, Date: date}
	if err = validator.ValidateRequest(req); err != nil {
		return domain.ConversionRequest{}, err
	}
	return req, nil
}

func printResult(w io.Writer, res domain.ConversionResult) {
	_, _ = fmt.Fprintf(w, "%s: %.2f %s for %g g of %dK gold\n",
		res.Date.Format(domain.DateLayout), res.AmountInCurrency, res.Currency, res.AmountGrams, res.Karat)
	if res.FellBackToUSD {
		_, _ = fmt.Fprintln(w, "note: no exchange rate for the requested currency, priced in USD")
	}
}
