package agent

import (
	"context"
	"fmt"

	portfolio "github.com/Ghamrifati/Equity-Portfolio-tracker"
	"github.com/Ghamrifati/Equity-Portfolio-tracker/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his equity portfolio: its value, its gains
			and losses, how it compares to the market index, and what his past sales cost him.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know about his tickers, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the expert grounding answers with web search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of financial products and institutions,
		and of the latest news about companies and market indices.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets. You can search and find anything related to
			financial institutions, companies, markets and indices. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert answering from the loaded portfolio data.
func NewAnalyst(analyzer *portfolio.Analyzer, style renderer.Style) *Expert {
	lib := []Function{
		summaryFunc(analyzer, style),
		missedProfitFunc(analyzer, style),
		performersFunc(analyzer, style),
	}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has read the user's transactions and price history.
		He can value the portfolio on any date, quantify the profit foregone by past sales,
		and rank the best and worst performing holdings.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's equity portfolio.
				You know how to use the Tools to extract relevant information about the user's
				positions and performance. You are part of a team of experts, yours is everything
				about the user's portfolio data. Pardon their approximative language and figure
				out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func summaryFunc(analyzer *portfolio.Analyzer, style renderer.Style) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary values the whole portfolio on a given date: total value,
			total investment, profit and loss, and the detail of every open position.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The valuation date, DD/MM/YYYY or YYYY-MM-DD. The latest known date is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the portfolio valuation and its positions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDateArg(args)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			metrics, diags := analyzer.PortfolioMetrics(on)
			return outputResponse(id, "Summary", renderer.HoldingMarkdown(metrics, diags, style))
		},
	}
}

func missedProfitFunc(analyzer *portfolio.Analyzer, style renderer.Style) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MissedProfit",
			Description: `MissedProfit lists, per sold security, the profit the user would have
			made by holding instead of selling, based on the latest market price.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the profit foregone by past sales.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			records, diags := analyzer.MissedProfit()
			return outputResponse(id, "MissedProfit", renderer.MissedProfitMarkdown(records, diags, style))
		},
	}
}

func performersFunc(analyzer *portfolio.Analyzer, style renderer.Style) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Performers",
			Description: `Performers ranks the best and worst performing holdings over a period,
			along with the benchmark index return over the same period.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": {
						Type:        genai.TypeString,
						Description: "One of 1Y, 6M, MTD, YTD or 'Last 60 Days'. 1Y is the default.",
					},
					"benchmark": {
						Type:        genai.TypeString,
						Description: "The benchmark symbol, e.g. ^MASI.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown card with the best performer, the worst, and the index return.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			period := portfolio.PeriodOf(stringArg(args, "period"))
			benchmark := stringArg(args, "benchmark")
			best, worst, diags := analyzer.BestWorstPerformers(period)
			index := analyzer.IndexPerformance(benchmark, period)
			return outputResponse(id, "Performers",
				renderer.PerformersMarkdown(best, worst, index, benchmark, period, diags, style))
		},
	}
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func parseDateArg(args map[string]any) (portfolio.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return portfolio.Date{}, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return portfolio.Date{}, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := portfolio.ParseDate(sdate)
	if err != nil {
		return portfolio.Date{}, fmt.Errorf("argument 'date' must be a valid date, got %q", sdate)
	}
	return date, nil
}
