// services/aggregator.go
package services

import (
	"banyadesk-backend/models"
	"banyadesk-backend/utils"
	"time"

	"gorm.io/gorm"
)

// RecordReader is the slice of the record store the aggregator needs.
type RecordReader interface {
	ListByDateRange(start, end string) ([]models.ClientRecord, error)
}

type TreatmentSummary struct {
	TimesDone int     `json:"timesDone"`
	Amount    float64 `json:"amount"`
}

// PeriodSummary is the derived dashboard payload: component-wise sums of
// every numeric ClientRecord field over a date window. Never stored.
// Empty is the only way a dashboard can tell "no data" from "zero visitors".
type PeriodSummary struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	RecordCount int    `json:"recordCount"`
	Empty       bool   `json:"empty"`

	TotalVisitors int `json:"totalVisitors"`
	Men           int `json:"men"`
	Women         int `json:"women"`
	LocalSpeakers int `json:"localSpeakers"`
	ForeignGuests int `json:"foreignGuests"`
	PeakTime      int `json:"peakTime"`
	OffPeakTime   int `json:"offPeakTime"`
	NewClients    int `json:"newClients"`

	VouchersSold     int     `json:"vouchersSold"`
	VouchersValue    float64 `json:"vouchersValue"`
	MembershipsSold  int     `json:"membershipsSold"`
	MembershipsValue float64 `json:"membershipsValue"`
	OnlineSales      float64 `json:"onlineSales"`
	OfflineSales     float64 `json:"offlineSales"`

	PaymentLinks      int     `json:"paymentLinks"`
	PaymentLinksValue float64 `json:"paymentLinksValue"`
	WidgetPayments    int     `json:"widgetPayments"`
	WidgetValue       float64 `json:"widgetValue"`
	DigitalBills      int     `json:"digitalBills"`
	DigitalBillsValue float64 `json:"digitalBillsValue"`

	FoodDrinkSales float64 `json:"foodDrinkSales"`

	Treatments map[string]TreatmentSummary `json:"treatments"`
}

type Aggregator struct {
	records RecordReader
}

func NewAggregator(records RecordReader) *Aggregator {
	return &Aggregator{records: records}
}

// SummarizeDay sums the records of one calendar day.
func (a *Aggregator) SummarizeDay(date string) (PeriodSummary, error) {
	records, err := a.records.ListByDateRange(date, date)
	if err != nil {
		return PeriodSummary{}, err
	}
	return Summarize(records, date, date), nil
}

// SummarizeWeek sums the 7 days starting at the given week's Monday.
func (a *Aggregator) SummarizeWeek(weekStart string) (PeriodSummary, error) {
	monday, err := utils.ParseDay(weekStart)
	if err != nil {
		return PeriodSummary{}, err
	}
	monday = utils.WeekStart(monday)
	start := utils.FormatDay(monday)
	end := utils.FormatDay(monday.AddDate(0, 0, 6))
	return a.SummarizePeriod(start, end)
}

// SummarizePeriod sums an arbitrary inclusive [start, end] window.
func (a *Aggregator) SummarizePeriod(start, end string) (PeriodSummary, error) {
	records, err := a.records.ListByDateRange(start, end)
	if err != nil {
		return PeriodSummary{}, err
	}
	return Summarize(records, start, end), nil
}

// DailySummaries returns one summary per day of the window, for exports and
// period charts. Days without records appear as empty summaries.
func (a *Aggregator) DailySummaries(start, end string) ([]PeriodSummary, error) {
	from, err := utils.ParseDay(start)
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseDay(end)
	if err != nil {
		return nil, err
	}

	records, err := a.records.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.ClientRecord)
	for _, record := range records {
		byDay[record.Date] = append(byDay[record.Date], record)
	}

	summaries := make([]PeriodSummary, 0, utils.DaysBetween(from, to)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := utils.FormatDay(day)
		summaries = append(summaries, Summarize(byDay[key], key, key))
	}
	return summaries, nil
}

// Summarize is the pure fold: plain addition per numeric field, treatments
// summed component-wise. A window with no records yields the zero summary
// with Empty set, not an error.
func Summarize(records []models.ClientRecord, start, end string) PeriodSummary {
	summary := PeriodSummary{
		StartDate:  start,
		EndDate:    end,
		Empty:      len(records) == 0,
		Treatments: make(map[string]TreatmentSummary, len(models.TreatmentKeys)),
	}
	for _, key := range models.TreatmentKeys {
		summary.Treatments[key] = TreatmentSummary{}
	}

	for _, record := range records {
		summary.RecordCount++

		summary.TotalVisitors += record.AmountOfPeople
		summary.Men += record.Men
		summary.Women += record.Women
		summary.LocalSpeakers += record.LocalSpeakers
		summary.ForeignGuests += record.ForeignGuests
		summary.PeakTime += record.PeakTime
		summary.OffPeakTime += record.OffPeakTime
		summary.NewClients += record.NewClients

		summary.VouchersSold += record.VouchersSold
		summary.VouchersValue += record.VouchersValue
		summary.MembershipsSold += record.MembershipsSold
		summary.MembershipsValue += record.MembershipsValue
		summary.OnlineSales += record.OnlineSales
		summary.OfflineSales += record.OfflineSales

		summary.PaymentLinks += record.PaymentLinks
		summary.PaymentLinksValue += record.PaymentLinksValue
		summary.WidgetPayments += record.WidgetPayments
		summary.WidgetValue += record.WidgetValue
		summary.DigitalBills += record.DigitalBills
		summary.DigitalBillsValue += record.DigitalBillsValue

		summary.FoodDrinkSales += record.FoodDrinkSales

		for key, entry := range record.Treatments.Normalized() {
			total := summary.Treatments[key]
			if entry.Done {
				total.TimesDone++
			}
			total.Amount += entry.Amount
			summary.Treatments[key] = total
		}
	}

	return summary
}

// TreatmentsRevenue is the combined treatment amount of a summary.
func (s PeriodSummary) TreatmentsRevenue() float64 {
	var total float64
	for _, entry := range s.Treatments {
		total += entry.Amount
	}
	return total
}

// GormRecordReader reads ClientRecords through the shared gorm handle.
type GormRecordReader struct {
	DB *gorm.DB
}

func (r GormRecordReader) ListByDateRange(start, end string) ([]models.ClientRecord, error) {
	records := make([]models.ClientRecord, 0)
	if err := r.DB.
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// StaleUnverified lists records still awaiting verification whose day is at
// or before the cutoff. Used by the reminder scheduler.
func (r GormRecordReader) StaleUnverified(cutoff time.Time) ([]models.ClientRecord, error) {
	records := make([]models.ClientRecord, 0)
	if err := r.DB.
		Where("is_verified = ? AND date <= ?", false, utils.FormatDay(cutoff)).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
