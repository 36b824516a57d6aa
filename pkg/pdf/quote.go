// Package pdf, tekliflerin yazdırılabilir çıktısını üretir.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/burakgns/istakip/models"
)

// Kolon genişlikleri (mm) — A4 genişliği 210, kenar boşlukları 10+10.
var itemColWidths = [6]float64{70, 20, 20, 30, 20, 30}

var itemColHeaders = [6]string{"Açıklama", "Miktar", "Birim", "Birim Fiyat", "KDV %", "Tutar"}

// RenderQuote, teklifi tek sayfalık (kalem sayısına göre uzayan) bir
// PDF'e çevirir. generatedAt, alt bilgideki üretim zamanıdır —
// test edilebilirlik için parametre olarak alınır.
func RenderQuote(quote *models.Quote, account *models.Account, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// cp1254: Türkçe karakterler (ş, ğ, İ...) için gerekli code page
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Başlık
	pdf.SetFont("Arial", "B", 18)
	title := "TEKLİF"
	if quote.Type == models.QuoteTypeReceived {
		title = "ALINAN TEKLİF"
	}
	pdf.CellFormat(0, 12, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr("Teklif No: "+quote.Number), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Tarih: "+quote.Date.Format("02.01.2006")), "", 1, "L", false, 0, "")
	if quote.ValidUntil != nil {
		pdf.CellFormat(0, 6, tr("Geçerlilik: "+quote.ValidUntil.Format("02.01.2006")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Cari hesap bloğu
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(account.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if account.Address != nil {
		pdf.MultiCell(0, 5, tr(*account.Address), "", "L", false)
	}
	if account.TaxNumber != nil {
		line := "VKN: " + *account.TaxNumber
		if account.TaxOffice != nil {
			line += " / " + *account.TaxOffice
		}
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	if account.Email != nil {
		pdf.CellFormat(0, 5, tr(*account.Email), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Kalem tablosu başlığı
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range itemColHeaders {
		pdf.CellFormat(itemColWidths[i], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Kalemler
	symbol := quote.Currency.Symbol()
	pdf.SetFont("Arial", "", 10)
	for _, item := range quote.Items {
		pdf.CellFormat(itemColWidths[0], 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(itemColWidths[1], 7, item.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(itemColWidths[2], 7, tr(item.Unit), "1", 0, "C", false, 0, "")
		pdf.CellFormat(itemColWidths[3], 7, tr(item.UnitPrice.StringFixed(2)+" "+symbol), "1", 0, "R", false, 0, "")
		pdf.CellFormat(itemColWidths[4], 7, item.TaxRate.StringFixed(0), "1", 0, "R", false, 0, "")
		pdf.CellFormat(itemColWidths[5], 7, tr(item.LineTotal.StringFixed(2)+" "+symbol), "1", 1, "R", false, 0, "")
	}

	// Genel toplam
	labelWidth := itemColWidths[0] + itemColWidths[1] + itemColWidths[2] + itemColWidths[3] + itemColWidths[4]
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(labelWidth, 9, tr("GENEL TOPLAM"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(itemColWidths[5], 9, tr(quote.Total.StringFixed(2)+" "+symbol), "1", 1, "R", false, 0, "")

	// Notlar
	if quote.Notes != nil && *quote.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, tr("Notlar"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(*quote.Notes), "", "L", false)
	}

	// Alt bilgi
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	footer := fmt.Sprintf("Bu belge %s tarihinde oluşturulmuştur.", generatedAt.Format("02.01.2006 15:04"))
	pdf.CellFormat(0, 5, tr(footer), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
