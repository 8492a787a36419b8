package entities

// Identifiable — общая черта всех сущностей: целочисленный первичный ключ,
// который назначает бэкенд при создании.
type Identifiable interface {
	PrimaryKey() int64
}
