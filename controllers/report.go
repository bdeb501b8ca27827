// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"morvarid-backend/config"
	"morvarid-backend/models"
	"morvarid-backend/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProductionReport streams the production records matching the filters
// as an Excel workbook
func ExportProductionReport(c *gin.Context) {
	farmID, ok := utils.ScopedFarmID(c, c.Query("farmId"))
	if !ok {
		utils.RespondWithError(c, http.StatusForbidden, "No farm assigned")
		return
	}

	query := config.DB.Order("date DESC, created_at DESC")
	if farmID != "" {
		query = query.Where("farm_id = ?", farmID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var records []models.ProductionRecord
	if err := query.Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	farmNames, err := farmNameIndex()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve farms")
		return
	}

	headers := []string{"Date", "Farm", "Egg Count", "Broken Eggs", "Mortality", "Feed (kg)", "Water (L)", "Notes"}
	rows := make([][]interface{}, 0, len(records))
	totalEggs, totalBroken, totalMortality := 0, 0, 0
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.Date, farmNames[r.FarmID.String()], r.EggCount, r.BrokenEggs,
			r.Mortality, r.FeedConsumption, r.WaterConsumption, r.Notes,
		})
		totalEggs += r.EggCount
		totalBroken += r.BrokenEggs
		totalMortality += r.Mortality
	}
	summary := map[string]interface{}{
		"Total eggs":      totalEggs,
		"Total broken":    totalBroken,
		"Total mortality": totalMortality,
	}

	writeWorkbook(c, "Production Report", "production_report", headers, rows, summary)
}

// ExportSalesReport streams the invoices matching the filters as an Excel
// workbook
func ExportSalesReport(c *gin.Context) {
	farmID, ok := utils.ScopedFarmID(c, c.Query("farmId"))
	if !ok {
		utils.RespondWithError(c, http.StatusForbidden, "No farm assigned")
		return
	}

	query := config.DB.Order("date DESC, created_at DESC")
	if farmID != "" {
		query = query.Where("farm_id = ?", farmID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var invoices []models.SalesInvoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	farmNames, err := farmNameIndex()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve farms")
		return
	}

	headers := []string{"Invoice Number", "Date", "Farm", "Customer", "Phone", "Quantity", "Price/Unit", "Total Price", "Paid"}
	rows := make([][]interface{}, 0, len(invoices))
	totalQuantity := 0
	totalRevenue := 0.0
	for _, i := range invoices {
		paid := "No"
		if i.IsPaid {
			paid = "Yes"
		}
		rows = append(rows, []interface{}{
			i.InvoiceNumber, i.Date, farmNames[i.FarmID.String()], i.CustomerName,
			i.CustomerPhone, i.Quantity, i.PricePerUnit, i.TotalPrice, paid,
		})
		totalQuantity += i.Quantity
		totalRevenue += i.TotalPrice
	}
	summary := map[string]interface{}{
		"Total quantity": totalQuantity,
		"Total revenue":  totalRevenue,
	}

	writeWorkbook(c, "Sales Report", "sales_report", headers, rows, summary)
}

func farmNameIndex() (map[string]string, error) {
	var farms []models.Farm
	if err := config.DB.Find(&farms).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(farms))
	for _, f := range farms {
		names[f.ID.String()] = f.Name
	}
	return names, nil
}

// writeWorkbook builds a styled single-sheet workbook and serves it as an
// attachment
func writeWorkbook(c *gin.Context, title, filePrefix string, headers []string, rows [][]interface{}, summary map[string]interface{}) {
	f := excelize.NewFile()
	sheetName := "Report"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	if len(summary) > 0 {
		summaryRow := len(rows) + 7
		summaryStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#E7E6E6"}, Pattern: 1},
		})
		cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
		f.SetCellValue(sheetName, cell, "Summary")
		f.SetCellStyle(sheetName, cell, cell, summaryStyle)

		summaryRow++
		for key, value := range summary {
			keyCell, _ := excelize.CoordinatesToCellName(1, summaryRow)
			valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow)
			f.SetCellValue(sheetName, keyCell, key)
			f.SetCellValue(sheetName, valueCell, value)
			summaryRow++
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write report")
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", filePrefix, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}
