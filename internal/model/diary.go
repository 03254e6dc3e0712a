package model

// MaxCommentsLength bounds the free-text comments field on a meal.
const MaxCommentsLength = 4000

// DiaryEntry is one calendar day's feeding record. The date is the primary
// key, so the store never holds two entries for the same day. Meals live and
// die with their owning entry.
type DiaryEntry struct {
	Date  Date   `gorm:"type:date;primaryKey" json:"data_registro"`
	Meals []Meal `gorm:"foreignKey:DiaryDate;references:Date;constraint:OnDelete:CASCADE" json:"refeicoes"`
}

// TableName overrides the gorm default
func (DiaryEntry) TableName() string {
	return "diary_entries"
}

// Meal is a single feeding event inside a diary entry. The surrogate id is a
// storage detail and never leaves the API.
type Meal struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	Type       string `gorm:"size:30" json:"tipo"`
	Method     string `gorm:"size:30" json:"metodo"`
	Assessment string `gorm:"size:30" json:"avaliacao"`
	Acceptance string `gorm:"size:30" json:"aceitacao"`
	Comments   string `gorm:"size:4000" json:"comentarios"`
	DiaryDate  Date   `gorm:"type:date;not null;index" json:"-"`
}

// TableName overrides the gorm default
func (Meal) TableName() string {
	return "meals"
}
