package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/repository"
	"github.com/karibugroceries/karibu-api/pkg/apperror"
	"github.com/karibugroceries/karibu-api/pkg/currency"
	"github.com/karibugroceries/karibu-api/pkg/export"
)

// ReportKind selects which collection a report covers
type ReportKind string

const (
	ReportInventory   ReportKind = "inventory"
	ReportSales       ReportKind = "sales"
	ReportCreditSales ReportKind = "credit_sales"
	// ReportFull is the complete business report spanning all collections
	ReportFull ReportKind = "complete"
)

// ExportFormat selects the artifact type
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
)

// Artifact is a built export ready to be offered as a download
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService computes report summaries and drives the export pipeline
type ReportService struct {
	produceRepo         repository.ProduceRepository
	saleRepo            repository.SaleRepository
	creditSaleRepo      repository.CreditSaleRepository
	orgName             string
	lowStockThresholdKg float64
	now                 func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	produceRepo repository.ProduceRepository,
	saleRepo repository.SaleRepository,
	creditSaleRepo repository.CreditSaleRepository,
	orgName string,
	lowStockThresholdKg float64,
) *ReportService {
	return &ReportService{
		produceRepo:         produceRepo,
		saleRepo:            saleRepo,
		creditSaleRepo:      creditSaleRepo,
		orgName:             orgName,
		lowStockThresholdKg: lowStockThresholdKg,
		now:                 time.Now,
	}
}

// ReportSummary holds the scalars shown on the reports page, both raw and
// formatted for display.
type ReportSummary struct {
	TotalStockKg          float64 `json:"total_stock_kg"`
	TotalStockTonnes      string  `json:"total_stock_tonnes"`
	TotalTransactions     int     `json:"total_transactions"`
	TotalRevenueUgx       int64   `json:"total_revenue_ugx"`
	TotalRevenue          string  `json:"total_revenue"`
	TotalRevenueCompact   string  `json:"total_revenue_compact"`
	PendingCreditsUgx     int64   `json:"pending_credits_ugx"`
	PendingCredits        string  `json:"pending_credits"`
	PendingCreditsCompact string  `json:"pending_credits_compact"`
	LowStockItems         int     `json:"low_stock_items"`
}

// Summary computes the reports page scalars from the current collections
func (s *ReportService) Summary(ctx context.Context) (*ReportSummary, error) {
	produce, sales, credits, err := s.collections(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(produce, sales, credits, s.lowStockThresholdKg)
	return &ReportSummary{
		TotalStockKg:          stats.TotalStock,
		TotalStockTonnes:      fmt.Sprintf("%.1f Tonnes", stats.TotalStock/1000),
		TotalTransactions:     stats.TotalSales,
		TotalRevenueUgx:       stats.TotalRevenue,
		TotalRevenue:          currency.FormatUGX(stats.TotalRevenue),
		TotalRevenueCompact:   currency.FormatCompactUGX(stats.TotalRevenue),
		PendingCreditsUgx:     stats.PendingCredits,
		PendingCredits:        currency.FormatUGX(stats.PendingCredits),
		PendingCreditsCompact: currency.FormatCompactUGX(stats.PendingCredits),
		LowStockItems:         stats.LowStockItems,
	}, nil
}

// Export builds the requested artifact. A nil artifact with a nil error
// means the input collection was empty and there is nothing to download.
// Any builder failure surfaces as a generic export error; no partial
// artifact is ever returned.
func (s *ReportService) Export(ctx context.Context, kind ReportKind, format ExportFormat) (*Artifact, error) {
	if kind == ReportFull {
		if format != FormatPDF {
			return nil, apperror.NewBadRequestError("The complete report is only available as PDF")
		}
		return s.exportFullReport(ctx)
	}

	table, summary, landscape, err := s.reportTable(ctx, kind)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch format {
	case FormatCSV:
		data := export.CSV(table)
		if data == nil {
			return nil, nil
		}
		return &Artifact{
			Filename:    export.Filename(string(kind), "csv", now),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil

	case FormatXLSX:
		data, err := export.XLSX(table, reportTitle(kind))
		if err != nil {
			return nil, apperror.ErrExportFailed
		}
		if data == nil {
			return nil, nil
		}
		return &Artifact{
			Filename:    export.Filename(string(kind), "xlsx", now),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil

	case FormatPDF:
		headFill, altFill := export.ColorGreen, export.ColorGreenTint
		if kind == ReportCreditSales {
			headFill, altFill = export.ColorEarth, export.ColorEarthTint
		}
		// PDF tables carry display columns, not the CSV column set
		pdfTable := s.pdfTable(kind, table)
		data, err := export.PDF(pdfTable, export.PDFOptions{
			OrgName:     s.orgName,
			Title:       reportTitle(kind),
			GeneratedAt: now,
			Landscape:   landscape,
			Summary:     summary,
			HeadFill:    headFill,
			AltRowFill:  altFill,
		})
		if err != nil {
			return nil, apperror.ErrExportFailed
		}
		return &Artifact{
			Filename:    export.Filename(string(kind), "pdf", now),
			ContentType: "application/pdf",
			Data:        data,
		}, nil

	default:
		return nil, apperror.NewBadRequestError("Unknown export format: " + string(format))
	}
}

func (s *ReportService) collections(ctx context.Context) ([]entity.Produce, []entity.Sale, []entity.CreditSale, error) {
	produce, err := s.produceRepo.All(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	sales, err := s.saleRepo.All(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	credits, err := s.creditSaleRepo.All(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return produce, sales, credits, nil
}

// reportTable materializes the CSV/XLSX table and PDF summary block for a
// single-collection report.
func (s *ReportService) reportTable(ctx context.Context, kind ReportKind) (export.Table, []string, bool, error) {
	switch kind {
	case ReportInventory:
		produce, err := s.produceRepo.All(ctx)
		if err != nil {
			return export.Table{}, nil, false, err
		}
		stats := ComputeStats(produce, nil, nil, s.lowStockThresholdKg)
		summary := []string{
			fmt.Sprintf("Total Items: %d", len(produce)),
			fmt.Sprintf("Total Stock: %s kg", currency.FormatKg(stats.TotalStock)),
			fmt.Sprintf("Low Stock Items: %d", stats.LowStockItems),
		}
		return inventoryTable(produce), summary, false, nil

	case ReportSales:
		sales, err := s.saleRepo.All(ctx)
		if err != nil {
			return export.Table{}, nil, false, err
		}
		var revenue int64
		var tonnage float64
		for _, sale := range sales {
			revenue += sale.AmountPaidUgx
			tonnage += sale.TonnageKg
		}
		summary := []string{
			fmt.Sprintf("Total Sales: %d", len(sales)),
			fmt.Sprintf("Total Revenue: %s", currency.FormatUGX(revenue)),
			fmt.Sprintf("Total Quantity Sold: %s kg", currency.FormatKg(tonnage)),
		}
		return salesTable(sales), summary, false, nil

	case ReportCreditSales:
		credits, err := s.creditSaleRepo.All(ctx)
		if err != nil {
			return export.Table{}, nil, false, err
		}
		var due int64
		var tonnage float64
		for _, c := range credits {
			due += c.AmountDueUgx
			tonnage += c.TonnageKg
		}
		summary := []string{
			fmt.Sprintf("Total Credit Sales: %d", len(credits)),
			fmt.Sprintf("Total Outstanding: %s", currency.FormatUGX(due)),
			fmt.Sprintf("Total Quantity: %s kg", currency.FormatKg(tonnage)),
		}
		// the credit table is wide, so this report is landscape
		return creditSalesTable(credits), summary, true, nil

	default:
		return export.Table{}, nil, false, apperror.NewBadRequestError("Unknown report: " + string(kind))
	}
}

// pdfTable converts the full CSV column set to the narrower display columns
// the PDF reports use.
func (s *ReportService) pdfTable(kind ReportKind, csvTable export.Table) export.Table {
	switch kind {
	case ReportInventory:
		// Name, Type, Stock (kg), Price/kg, Branch, Dealer
		t := export.Table{Headers: []string{"Name", "Type", "Stock (kg)", "Price/kg", "Branch", "Dealer"}}
		for _, row := range csvTable.Rows {
			stock, _ := strconv.ParseFloat(row[2], 64)
			price, _ := strconv.ParseInt(row[4], 10, 64)
			perKg := int64(0)
			if stock > 0 {
				perKg = int64(math.Round(float64(price) / stock))
			}
			t.Rows = append(t.Rows, []string{
				row[0], row[1],
				currency.FormatKg(stock),
				currency.FormatUGX(perKg),
				row[7], row[5],
			})
		}
		return t

	case ReportSales:
		// Date, Produce, Buyer, Qty (kg), Amount, Branch
		t := export.Table{Headers: []string{"Date", "Produce", "Buyer", "Qty (kg)", "Amount", "Branch"}}
		for _, row := range csvTable.Rows {
			qty, _ := strconv.ParseFloat(row[2], 64)
			amount, _ := strconv.ParseInt(row[3], 10, 64)
			date, _ := time.Parse("2006-01-02", row[6])
			t.Rows = append(t.Rows, []string{
				date.Format("Jan 02, 2006"),
				row[0], row[1],
				currency.FormatKg(qty),
				currency.FormatUGX(amount),
				row[5],
			})
		}
		return t

	case ReportCreditSales:
		// Buyer, NIN, Location, Contact, Produce, Qty, Amount Due, Due Date
		t := export.Table{Headers: []string{"Buyer", "NIN", "Location", "Contact", "Produce", "Qty", "Amount Due", "Due Date"}}
		for _, row := range csvTable.Rows {
			amount, _ := strconv.ParseInt(row[7], 10, 64)
			due, _ := time.Parse("2006-01-02", row[9])
			t.Rows = append(t.Rows, []string{
				row[0], row[1], row[2], row[3], row[4],
				row[6] + " kg",
				currency.FormatUGX(amount),
				due.Format("Jan 02, 2006"),
			})
		}
		return t
	}
	return csvTable
}

func (s *ReportService) exportFullReport(ctx context.Context) (*Artifact, error) {
	produce, sales, credits, err := s.collections(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(produce, sales, credits, s.lowStockThresholdKg)
	now := s.now()

	inventory := export.Table{Headers: []string{"Name", "Type", "Stock (kg)", "Branch", "Dealer"}}
	for _, p := range produce {
		inventory.Rows = append(inventory.Rows, []string{
			p.Name, p.Type.String(), currency.FormatKg(p.TonnageKg), p.Branch.String(), p.DealerName,
		})
	}

	salesSection := export.Table{Headers: []string{"Date", "Produce", "Buyer", "Qty (kg)", "Amount", "Branch"}}
	for _, sale := range sales {
		salesSection.Rows = append(salesSection.Rows, []string{
			sale.Date.Format("Jan 02, 2006"), sale.ProduceName, sale.BuyerName,
			currency.FormatKg(sale.TonnageKg), currency.FormatUGX(sale.AmountPaidUgx), sale.Branch.String(),
		})
	}

	creditSection := export.Table{Headers: []string{"Buyer", "Produce", "Amount Due", "Due Date", "Branch"}}
	for _, c := range credits {
		creditSection.Rows = append(creditSection.Rows, []string{
			c.BuyerName, c.ProduceName, currency.FormatUGX(c.AmountDueUgx),
			c.DueDate.Format("Jan 02, 2006"), c.Branch.String(),
		})
	}

	data, err := export.FullReportPDF(export.FullReportOptions{
		OrgName:      s.orgName,
		Title:        "Complete Business Report",
		GeneratedAt:  now,
		SummaryTitle: "Executive Summary",
		SummaryLines: []string{
			fmt.Sprintf("Total Inventory: %s kg across %d items", currency.FormatKg(stats.TotalStock), len(produce)),
			fmt.Sprintf("Total Sales: %d transactions worth %s", len(sales), currency.FormatUGX(stats.TotalRevenue)),
			fmt.Sprintf("Outstanding Credits: %s from %d buyers", currency.FormatUGX(stats.PendingCredits), len(credits)),
		},
		Sections: []export.FullReportSection{
			{Title: "Inventory Report", TitleColor: export.ColorGreen, HeadFill: export.ColorGreen, Table: inventory},
			{Title: "Sales Report", TitleColor: export.ColorGreen, HeadFill: export.ColorGreen, Table: salesSection},
			{Title: "Credit Sales Report", TitleColor: export.ColorEarth, HeadFill: export.ColorEarth, Table: creditSection},
		},
	})
	if err != nil {
		return nil, apperror.ErrExportFailed
	}

	return &Artifact{
		Filename:    export.Filename(string(ReportFull), "pdf", now),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func reportTitle(kind ReportKind) string {
	switch kind {
	case ReportInventory:
		return "Inventory Report"
	case ReportSales:
		return "Sales Report"
	case ReportCreditSales:
		return "Credit Sales Report"
	case ReportFull:
		return "Complete Business Report"
	}
	return "Report"
}

// inventoryTable materializes the inventory CSV column set
func inventoryTable(produce []entity.Produce) export.Table {
	t := export.Table{Headers: []string{
		"Name", "Type", "Stock (kg)", "Cost (UGX)", "Price (UGX)",
		"Dealer", "Contact", "Branch", "Date Added",
	}}
	for _, p := range produce {
		t.Rows = append(t.Rows, []string{
			p.Name,
			p.Type.String(),
			formatFloat(p.TonnageKg),
			strconv.FormatInt(p.CostUgx, 10),
			strconv.FormatInt(p.PriceUgx, 10),
			p.DealerName,
			p.DealerContact,
			p.Branch.String(),
			p.DateAdded.Format("2006-01-02"),
		})
	}
	return t
}

// salesTable materializes the sales CSV column set
func salesTable(sales []entity.Sale) export.Table {
	t := export.Table{Headers: []string{
		"Produce", "Buyer", "Quantity (kg)", "Amount (UGX)", "Sales Agent", "Branch", "Date",
	}}
	for _, s := range sales {
		t.Rows = append(t.Rows, []string{
			s.ProduceName,
			s.BuyerName,
			formatFloat(s.TonnageKg),
			strconv.FormatInt(s.AmountPaidUgx, 10),
			s.SalesAgentName,
			s.Branch.String(),
			s.Date.Format("2006-01-02"),
		})
	}
	return t
}

// creditSalesTable materializes the credit sales CSV column set
func creditSalesTable(credits []entity.CreditSale) export.Table {
	t := export.Table{Headers: []string{
		"Buyer", "National ID", "Location", "Contact", "Produce", "Type",
		"Quantity (kg)", "Amount Due (UGX)", "Dispatch Date", "Due Date",
		"Sales Agent", "Branch",
	}}
	for _, c := range credits {
		t.Rows = append(t.Rows, []string{
			c.BuyerName,
			c.NationalID,
			c.Location,
			c.Contact,
			c.ProduceName,
			c.ProduceType.String(),
			formatFloat(c.TonnageKg),
			strconv.FormatInt(c.AmountDueUgx, 10),
			c.DispatchDate.Format("2006-01-02"),
			c.DueDate.Format("2006-01-02"),
			c.SalesAgentName,
			c.Branch.String(),
		})
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
