package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// TreatmentKeys are the ten fixed treatment slots on every daily record.
var TreatmentKeys = []string{
	"classicSauna",
	"steamBath",
	"honeyRitual",
	"saltPeeling",
	"birchWhisk",
	"oakWhisk",
	"coldPlunge",
	"headMassage",
	"bodyMassage",
	"herbalTea",
}

type TreatmentEntry struct {
	Done   bool    `json:"done"`
	Amount float64 `json:"amount"`
}

// TreatmentMap is stored as a JSON document in a text column. The sqlite
// driver hands Scan a string, the postgres driver []byte.
type TreatmentMap map[string]TreatmentEntry

func (m TreatmentMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *TreatmentMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = TreatmentMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported column type for treatment map")
}

// Normalized returns a copy carrying every fixed treatment key, so summaries
// and exports never have to deal with missing slots.
func (m TreatmentMap) Normalized() TreatmentMap {
	out := make(TreatmentMap, len(TreatmentKeys))
	for _, key := range TreatmentKeys {
		out[key] = m[key]
	}
	return out
}

// ClientRecord is one reception-submitted day of visitor and sales figures.
// Date is the calendar day key (YYYY-MM-DD).
type ClientRecord struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"index;not null" json:"date"`

	AmountOfPeople int `gorm:"default:0" json:"amountOfPeople"`
	Men            int `gorm:"default:0" json:"men"`
	Women          int `gorm:"default:0" json:"women"`
	LocalSpeakers  int `gorm:"default:0" json:"localSpeakers"`
	ForeignGuests  int `gorm:"default:0" json:"foreignGuests"`
	PeakTime       int `gorm:"default:0" json:"peakTime"`
	OffPeakTime    int `gorm:"default:0" json:"offPeakTime"`
	NewClients     int `gorm:"default:0" json:"newClients"`

	VouchersSold     int     `gorm:"default:0" json:"vouchersSold"`
	VouchersValue    float64 `gorm:"default:0" json:"vouchersValue"`
	MembershipsSold  int     `gorm:"default:0" json:"membershipsSold"`
	MembershipsValue float64 `gorm:"default:0" json:"membershipsValue"`
	OnlineSales      float64 `gorm:"default:0" json:"onlineSales"`
	OfflineSales     float64 `gorm:"default:0" json:"offlineSales"`

	PaymentLinks      int     `gorm:"default:0" json:"paymentLinks"`
	PaymentLinksValue float64 `gorm:"default:0" json:"paymentLinksValue"`
	WidgetPayments    int     `gorm:"default:0" json:"widgetPayments"`
	WidgetValue       float64 `gorm:"default:0" json:"widgetValue"`
	DigitalBills      int     `gorm:"default:0" json:"digitalBills"`
	DigitalBillsValue float64 `gorm:"default:0" json:"digitalBillsValue"`

	FoodDrinkSales float64 `gorm:"default:0" json:"foodDrinkSales"`

	Treatments TreatmentMap `gorm:"type:text" json:"treatments"`

	CreatedBy  string `json:"createdBy"`
	Status     Status `gorm:"type:varchar(20);default:'edited'" json:"status"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
