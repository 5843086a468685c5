package models

// Categories is the fixed set of activity categories exposed by the API
// and used to steer preference extraction. Read-only after init.
var Categories = []string{
	"food",
	"outdoors",
	"entertainment",
	"sports",
	"culture",
	"nightlife",
	"shopping",
}
