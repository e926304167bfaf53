package parser

import (
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/shelfscan/shelfscan/constants"
	"github.com/shelfscan/shelfscan/internal/entity"
)

const num = `\d+(?:[.,]\d+)?`

var (
	// Pattern A: barcode-led row "<12-14 digit barcode> <qty> [<unit>] <rest>".
	barcodeRowRe = regexp.MustCompile(`^(\d{12,14})\s+(` + num + `)\s*(AD|Ad|ad|KG|Kg|kg|KOLI|PAKET)?\s+(.+)$`)
	// Pattern B: "<name> x<qty> @<price>".
	qtyAtPriceRe = regexp.MustCompile(`(?i)(.+?)\s+x(` + num + `)\s+@(` + num + `)`)
	// Pattern C: "<name> <qty> <price>" anchored at line end.
	trailingPairRe = regexp.MustCompile(`(.+?)\s+(` + num + `)\s+(` + num + `)\s*$`)

	numTokenRe = regexp.MustCompile(num)

	// Summary rows that must never become item lines. KDV spelling drift is
	// normalized before the keyword test.
	skipKeywords = []string{"KDV", "TOPLAMI", "TOPLAM", "FATURA", "VISA", "NAKIT", "NAKİT", "GENEL"}
)

// Config holds thresholds for invoice line extraction.
type Config struct {
	MaxLines     int     // emitted-line cap, default constants.MaxLinesPerDocument
	MaxUnitPrice float64 // exclusive price bound, default constants.MaxUnitPrice
}

// Extractor turns raw invoice OCR text into item lines. It is stateless:
// identical input always yields the identical line sequence.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = constants.MaxLinesPerDocument
	}
	if cfg.MaxUnitPrice <= 0 {
		cfg.MaxUnitPrice = constants.MaxUnitPrice
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract scans the document line by line with a lookahead of one line.
// Barcode-led rows are tried first (densest, least ambiguous), then the two
// trailing-numeric fallbacks for receipts without machine-readable barcodes.
// Lines matching no pattern are skipped; malformed input never errors.
func (e *Extractor) Extract(doc entity.Document) []entity.ExtractedLine {
	out := make([]entity.ExtractedLine, 0, 16)
	if strings.TrimSpace(doc.Text) == "" {
		return out
	}

	rows := strings.Split(doc.Text, "\n")
	for i := range rows {
		rows[i] = strings.Join(strings.Fields(rows[i]), " ")
	}

	for i := 0; i < len(rows); {
		if len(out) >= e.cfg.MaxLines {
			break
		}
		row := rows[i]

		if isSummaryRow(row) {
			i++
			continue
		}

		next := ""
		if i+1 < len(rows) {
			next = rows[i+1]
		}
		if line, usedNext, ok := e.matchBarcodeRow(row, next); ok {
			out = append(out, line)
			if usedNext {
				i += 2
			} else {
				i++
			}
			continue
		} else if usedNext {
			// Barcode row failed the sanity filter but still owns its
			// name line; don't re-scan the name as a candidate item.
			i += 2
			continue
		}

		if line, matched, ok := e.matchQtyAtPrice(row); matched {
			if ok {
				out = append(out, line)
			}
			i++
			continue
		}

		if line, matched, ok := e.matchTrailingPair(row); matched {
			if ok {
				out = append(out, line)
			}
			i++
			continue
		}

		i++
	}

	e.logger.Debug("invoice extraction complete", "rows", len(rows), "lines", len(out))
	return out
}

// isSummaryRow reports whether the row is a tax/total/payment summary line.
func isSummaryRow(row string) bool {
	upper := strings.ToUpper(row)
	// Normalize common OCR drift of the tax label (DVS/KDVE -> KDV).
	upper = strings.ReplaceAll(upper, " DVS", " KDV")
	upper = strings.ReplaceAll(upper, " KDVE", " KDV")
	upper = strings.ReplaceAll(upper, "KDVE", "KDV")
	upper = strings.ReplaceAll(upper, "KDV%", "KDV ")
	for _, k := range skipKeywords {
		if strings.Contains(upper, k) {
			return true
		}
	}
	return false
}

// matchBarcodeRow attempts pattern A. The remainder after the unit token is
// scanned for money candidates: leftmost is the unit price, rightmost a
// possible line total. usedNext reports that the following row was consumed
// as the product name, which holds even when the candidate itself is
// discarded by the sanity filter.
func (e *Extractor) matchBarcodeRow(row, next string) (line entity.ExtractedLine, usedNext, ok bool) {
	m := barcodeRowRe.FindStringSubmatch(row)
	if m == nil {
		return entity.ExtractedLine{}, false, false
	}

	qty := NormalizeQuantity(ParseNumber(m[2]))
	unit := constants.CanonicalUnit(m[3])
	rest := m[4]

	var money []float64
	for _, tok := range numTokenRe.FindAllString(rest, -1) {
		if v := ParseNumber(tok); v > 0 {
			money = append(money, v)
		}
	}

	var unitPrice, lineTotal float64
	if len(money) > 0 {
		unitPrice = money[0]
		lineTotal = money[len(money)-1]

		// qty 1 with a rightmost figure well under the unit price: that is
		// a tax or discount column, not a line total.
		if qty == 1 && lineTotal < unitPrice*0.6 {
			lineTotal = 0
		}
		// Implausible unit price but a usable total: recompute.
		if (unitPrice <= 0 || unitPrice > 100000) && lineTotal > 0 && qty > 0 {
			unitPrice = lineTotal / qty
		}
	}

	nameSrc := row
	if LooksLikeName(next) {
		nameSrc = next
		usedNext = true
	}
	name := FinalClean(Correct(nameSrc))
	if name == "" {
		// Last resort: an emitted line must carry a non-empty name.
		name = strings.TrimSpace(nameSrc)
	}

	if qty <= 0 || unitPrice <= 0 || unitPrice >= e.cfg.MaxUnitPrice {
		return entity.ExtractedLine{}, usedNext, false
	}
	return entity.ExtractedLine{
		Barcode:   m[1],
		NameRaw:   name,
		Quantity:  qty,
		Unit:      unit,
		UnitPrice: round2(unitPrice),
	}, usedNext, true
}

// matchQtyAtPrice attempts pattern B: "<name> x<qty> @<price>". matched
// reports a structural hit; ok additionally requires the sanity filter.
func (e *Extractor) matchQtyAtPrice(row string) (line entity.ExtractedLine, matched, ok bool) {
	m := qtyAtPriceRe.FindStringSubmatch(row)
	if m == nil {
		return entity.ExtractedLine{}, false, false
	}
	line, ok = e.fallbackLine(m[1], m[2], m[3])
	return line, true, ok
}

// matchTrailingPair attempts pattern C: "<name> <qty> <price>" at line end.
func (e *Extractor) matchTrailingPair(row string) (line entity.ExtractedLine, matched, ok bool) {
	m := trailingPairRe.FindStringSubmatch(row)
	if m == nil {
		return entity.ExtractedLine{}, false, false
	}
	line, ok = e.fallbackLine(m[1], m[2], m[3])
	return line, true, ok
}

func (e *Extractor) fallbackLine(rawName, rawQty, rawPrice string) (entity.ExtractedLine, bool) {
	qty := NormalizeQuantity(ParseNumber(rawQty))
	price := ParseNumber(rawPrice)
	if qty <= 0 || price <= 0 || price >= e.cfg.MaxUnitPrice {
		return entity.ExtractedLine{}, false
	}
	name := Correct(rawName)
	if name == "" {
		name = strings.TrimSpace(rawName)
	}
	return entity.ExtractedLine{
		NameRaw:   name,
		Quantity:  qty,
		Unit:      constants.UnitPiece,
		UnitPrice: round2(price),
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
