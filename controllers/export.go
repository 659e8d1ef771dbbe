// controllers/export.go
package controllers

import (
	"banyadesk-backend/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{
	"Date", "Visitors", "New Clients", "Vouchers", "Memberships",
	"Online Sales", "Offline Sales", "Food & Drink", "Treatments Revenue",
}

// ExportPeriodReport streams an xlsx workbook with one row per day of the
// requested period plus a totals row.
func ExportPeriodReport(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "start and end are required")
		return
	}
	from, err := utils.ParseDay(start)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "start must be YYYY-MM-DD")
		return
	}
	to, err := utils.ParseDay(end)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "end must be YYYY-MM-DD")
		return
	}
	if from.After(to) {
		utils.RespondWithError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	agg := aggregator()
	days, err := agg.DailySummaries(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	totals, err := agg.SummarizePeriod(start, end)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	for i, column := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, column)
	}

	row := 2
	for _, day := range days {
		writeSummaryRow(f, sheet, row, day.StartDate,
			day.TotalVisitors, day.NewClients, day.VouchersValue, day.MembershipsValue,
			day.OnlineSales, day.OfflineSales, day.FoodDrinkSales, day.TreatmentsRevenue())
		row++
	}
	writeSummaryRow(f, sheet, row, "Total",
		totals.TotalVisitors, totals.NewClients, totals.VouchersValue, totals.MembershipsValue,
		totals.OnlineSales, totals.OfflineSales, totals.FoodDrinkSales, totals.TreatmentsRevenue())

	filename := fmt.Sprintf("banyadesk-report-%s-%s.xlsx", start, end)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write report")
	}
}

func writeSummaryRow(f *excelize.File, sheet string, row int, label string, values ...interface{}) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, label)
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+2, row)
		f.SetCellValue(sheet, cell, value)
	}
}
