package sqlite

// kvRecord fila de la tabla clave/valor.
type kvRecord struct {
	Key       string `gorm:"column:key;primaryKey"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt string `gorm:"column:updated_at;not null"`
}

func (kvRecord) TableName() string { return "litigios_kv" }
