package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type mockItem struct {
	name     string
	minPrice int
	maxPrice int
}

// mockItems skews toward the product names the extraction heuristics
// see in real usage, so generated receipts exercise the same keyword
// paths as genuine ones.
var mockItems = []mockItem{
	{"Wireless Mouse Logitech M235", 400, 900},
	{"USB-C Cable Nylon Braided", 150, 500},
	{"Notebook Spiral Binding", 80, 300},
	{"Bluetooth Earphones", 800, 3000},
	{"Laptop Sleeve 15 inch", 500, 1200},
	{"Water Bottle Steel 1L", 200, 600},
	{"Desk Lamp LED", 600, 1500},
	{"Phone Case Silicone", 150, 700},
}

// Each template takes the item name and a formatted amount.
var mockPhrases = []func(item, amount string) string{
	func(item, amount string) string { return fmt.Sprintf("Bought %s for %s rupees", item, amount) },
	func(item, amount string) string { return fmt.Sprintf("Paid %s for %s", amount, item) },
	func(item, amount string) string { return fmt.Sprintf("Spent %s on %s yesterday", amount, item) },
	func(item, amount string) string { return fmt.Sprintf("%s purchase cost Rs %s today", item, amount) },
}

var taxRate = decimal.NewFromFloat(0.18)

type receiptGenerator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewReceiptGenerator returns a deterministic fake receipt source when
// seed is nonzero, useful for reproducing parser behavior. A nil clock
// uses wall time for receipt dates.
func NewReceiptGenerator(seed uint64, now func() time.Time) ReceiptGeneratorInterface {
	if now == nil {
		now = time.Now
	}
	return &receiptGenerator{
		faker: gofakeit.New(seed),
		now:   now,
	}
}

// GenerateReceiptText renders a plausible store invoice with line
// items, a subtotal, tax at 18% and a labeled grand total, shaped the
// way OCR output of a scanned retail receipt reads.
func (s *receiptGenerator) GenerateReceiptText() string {
	var b strings.Builder

	store := s.faker.Company()
	fmt.Fprintf(&b, "%s Invoice\n", store)
	fmt.Fprintf(&b, "Order ID: %03d-%07d-%07d\n",
		s.faker.Number(100, 999), s.faker.Number(1000000, 9999999), s.faker.Number(1000000, 9999999))
	fmt.Fprintf(&b, "Date: %s\n\n", s.now().Format("2 Jan 2006"))

	fmt.Fprintf(&b, "Bill To:\n%s\n%s, %s\n\n",
		s.faker.Name(), s.faker.City(), s.faker.State())

	b.WriteString("Description    Qty    Price    Amount\n")

	itemCount := s.faker.Number(1, 4)
	subtotal := decimal.Zero
	for i := 0; i < itemCount; i++ {
		item := mockItems[s.faker.Number(0, len(mockItems)-1)]
		qty := s.faker.Number(1, 3)
		price := decimal.NewFromInt(int64(s.faker.Number(item.minPrice, item.maxPrice)))
		lineTotal := price.Mul(decimal.NewFromInt(int64(qty)))
		subtotal = subtotal.Add(lineTotal)
		fmt.Fprintf(&b, "%s    %d    %s    %s\n",
			item.name, qty, price.StringFixed(2), lineTotal.StringFixed(2))
	}

	tax := subtotal.Mul(taxRate).Round(2)
	grand := subtotal.Add(tax)

	fmt.Fprintf(&b, "\nSubtotal: %s\n", subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Tax (18%%): %s\n", tax.StringFixed(2))
	fmt.Fprintf(&b, "Grand Total: Rs. %s\n\n", grand.StringFixed(2))
	b.WriteString("Thank you for shopping with us.\n")

	return b.String()
}

// GenerateExpensePhrase produces a single conversational expense
// sentence of the kind users type by hand.
func (s *receiptGenerator) GenerateExpensePhrase() string {
	item := mockItems[s.faker.Number(0, len(mockItems)-1)]
	amount := s.faker.Number(item.minPrice, item.maxPrice)
	phrase := mockPhrases[s.faker.Number(0, len(mockPhrases)-1)]
	return phrase(item.name, fmt.Sprintf("%d", amount))
}
