package memory

import (
	"time"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedProduce() []entity.Produce {
	return []entity.Produce{
		{
			ID:            "1",
			Name:          "Premium Beans",
			Type:          enum.ProduceTypeBeans,
			DateAdded:     date(2024, time.January, 15),
			TonnageKg:     5000,
			CostUgx:       2500000,
			PriceUgx:      3500000,
			DealerName:    "John Mukasa",
			DealerContact: "+256 701 234 567",
			Branch:        enum.BranchMaganjo,
		},
		{
			ID:            "2",
			Name:          "White Maize",
			Type:          enum.ProduceTypeGrainMaize,
			DateAdded:     date(2024, time.January, 18),
			TonnageKg:     8500,
			CostUgx:       4000000,
			PriceUgx:      5200000,
			DealerName:    "Sarah Nakato",
			DealerContact: "+256 702 345 678",
			Branch:        enum.BranchMaganjo,
		},
		{
			ID:            "3",
			Name:          "Red Cow Peas",
			Type:          enum.ProduceTypeCowPeas,
			DateAdded:     date(2024, time.January, 20),
			TonnageKg:     3200,
			CostUgx:       1800000,
			PriceUgx:      2600000,
			DealerName:    "KGL Farm - Maganjo",
			DealerContact: "+256 703 456 789",
			Branch:        enum.BranchMaganjo,
		},
		{
			ID:            "4",
			Name:          "Groundnuts",
			Type:          enum.ProduceTypeGNuts,
			DateAdded:     date(2024, time.January, 22),
			TonnageKg:     2800,
			CostUgx:       3200000,
			PriceUgx:      4500000,
			DealerName:    "Peter Ochieng",
			DealerContact: "+256 704 567 890",
			Branch:        enum.BranchMatugga,
		},
		{
			ID:            "5",
			Name:          "Organic Soybeans",
			Type:          enum.ProduceTypeSoybeans,
			DateAdded:     date(2024, time.January, 25),
			TonnageKg:     4100,
			CostUgx:       2800000,
			PriceUgx:      3900000,
			DealerName:    "KGL Farm - Matugga",
			DealerContact: "+256 705 678 901",
			Branch:        enum.BranchMatugga,
		},
		{
			ID:            "6",
			Name:          "Yellow Maize",
			Type:          enum.ProduceTypeGrainMaize,
			DateAdded:     date(2024, time.January, 28),
			TonnageKg:     950,
			CostUgx:       3800000,
			PriceUgx:      4800000,
			DealerName:    "Grace Auma",
			DealerContact: "+256 706 789 012",
			Branch:        enum.BranchMatugga,
		},
	}
}

func seedSales() []entity.Sale {
	return []entity.Sale{
		{
			ID:             "s1",
			ProduceID:      "1",
			ProduceName:    "Premium Beans",
			TonnageKg:      500,
			AmountPaidUgx:  175000,
			BuyerName:      "Kampala Traders Ltd",
			SalesAgentName: "David Kato",
			Date:           date(2024, time.January, 20),
			Branch:         enum.BranchMaganjo,
		},
		{
			ID:             "s2",
			ProduceID:      "2",
			ProduceName:    "White Maize",
			TonnageKg:      1200,
			AmountPaidUgx:  624000,
			BuyerName:      "Jinja Flour Mills",
			SalesAgentName: "Mary Nalubega",
			Date:           date(2024, time.January, 22),
			Branch:         enum.BranchMaganjo,
		},
		{
			ID:             "s3",
			ProduceID:      "4",
			ProduceName:    "Groundnuts",
			TonnageKg:      350,
			AmountPaidUgx:  157500,
			BuyerName:      "Entebbe Foods",
			SalesAgentName: "James Okello",
			Date:           date(2024, time.January, 25),
			Branch:         enum.BranchMatugga,
		},
	}
}

func seedCreditSales() []entity.CreditSale {
	return []entity.CreditSale{
		{
			ID:             "c1",
			BuyerName:      "Mbarara Wholesale Co.",
			NationalID:     "CM84567890ABCDE",
			Location:       "Mbarara Town",
			Contact:        "+256 770 123 456",
			AmountDueUgx:   2500000,
			SalesAgentName: "David Kato",
			DueDate:        date(2024, time.February, 15),
			ProduceName:    "Premium Beans",
			ProduceType:    enum.ProduceTypeBeans,
			TonnageKg:      800,
			DispatchDate:   date(2024, time.January, 28),
			Branch:         enum.BranchMaganjo,
		},
		{
			ID:             "c2",
			BuyerName:      "Fort Portal Agri Ltd",
			NationalID:     "CF12345678XYZAB",
			Location:       "Fort Portal",
			Contact:        "+256 780 234 567",
			AmountDueUgx:   1800000,
			SalesAgentName: "James Okello",
			DueDate:        date(2024, time.February, 28),
			ProduceName:    "Organic Soybeans",
			ProduceType:    enum.ProduceTypeSoybeans,
			TonnageKg:      500,
			DispatchDate:   date(2024, time.January, 30),
			Branch:         enum.BranchMatugga,
		},
	}
}
