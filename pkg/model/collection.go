package model

//go:generate go run github.com/dmarkham/enumer -type Collection -trimprefix Collection -transform lower -yaml -output collection.gen.go

// Collection names one of the three record collections.
type Collection int

const (
	CollectionPerson Collection = iota
	CollectionFirestation
	CollectionMedicalRecord
)

// Label returns the human readable name used in outcome messages.
func (c Collection) Label() string {
	switch c {
	case CollectionPerson:
		return "Person"
	case CollectionFirestation:
		return "Firestation mapping"
	case CollectionMedicalRecord:
		return "Medical record"
	default:
		return c.String()
	}
}
