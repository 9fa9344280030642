package reservation

// ===============================
// Service Catalog
// ===============================

type ServiceType string

const (
	ServiceHaircut     ServiceType = "haircut"
	ServiceShave       ServiceType = "shave"
	ServiceBeardTrim   ServiceType = "beard-trim"
	ServiceFullService ServiceType = "full-service"
)

type ServiceInfo struct {
	Price       float64
	DurationMin int
}

var services = map[ServiceType]ServiceInfo{
	ServiceHaircut:     {Price: 25, DurationMin: 30},
	ServiceShave:       {Price: 15, DurationMin: 20},
	ServiceBeardTrim:   {Price: 20, DurationMin: 25},
	ServiceFullService: {Price: 45, DurationMin: 60},
}

// ServiceFor returns the fixed price/duration for a service type.
func ServiceFor(t string) (ServiceInfo, bool) {
	info, ok := services[ServiceType(t)]
	return info, ok
}

func IsValidServiceType(t string) bool {
	_, ok := services[ServiceType(t)]
	return ok
}
