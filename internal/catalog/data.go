package catalog

import "github.com/e6carspa/booking-platform/internal/domain"

var defaultServices = []domain.Service{
	{
		ID:              "service-1",
		Name:            "Car Wash & Polish",
		Description:     "Complete exterior wash with premium polish for a showroom shine.",
		Price:           1499,
		DurationMinutes: 60,
		Image:           "https://images.pexels.com/photos/6873076/pexels-photo-6873076.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "service-2",
		Name:            "Engine Service",
		Description:     "Comprehensive engine check-up, oil change, and filter replacement.",
		Price:           3999,
		DurationMinutes: 120,
		Image:           "https://images.pexels.com/photos/4480505/pexels-photo-4480505.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "service-3",
		Name:            "Wheel Alignment",
		Description:     "Precision wheel alignment to ensure smooth driving and reduced tire wear.",
		Price:           1799,
		DurationMinutes: 45,
		Image:           "https://images.pexels.com/photos/3806249/pexels-photo-3806249.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "service-4",
		Name:            "Interior Deep Clean",
		Description:     "Complete interior detailing and sanitization with premium products.",
		Price:           2499,
		DurationMinutes: 90,
		Image:           "https://images.pexels.com/photos/3807329/pexels-photo-3807329.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "service-5",
		Name:            "AC Service",
		Description:     "Complete air conditioning system check-up and gas refill if needed.",
		Price:           2799,
		DurationMinutes: 60,
		Image:           "https://images.pexels.com/photos/2244746/pexels-photo-2244746.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:              "service-6",
		Name:            "Brake Service",
		Description:     "Inspection and servicing of the complete brake system for safety.",
		Price:           2999,
		DurationMinutes: 75,
		Image:           "https://images.pexels.com/photos/8985458/pexels-photo-8985458.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
}

var defaultMechanics = []domain.Mechanic{
	{
		ID:             "mechanic-1",
		Name:           "Rajesh Kumar",
		Specialization: "Engine Specialist",
		Rating:         4.8,
		Image:          "https://images.pexels.com/photos/8460290/pexels-photo-8460290.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:             "mechanic-2",
		Name:           "Sunil Verma",
		Specialization: "Electrical Systems",
		Rating:         4.6,
		Image:          "https://images.pexels.com/photos/3822719/pexels-photo-3822719.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:             "mechanic-3",
		Name:           "Priya Singh",
		Specialization: "Detailing Expert",
		Rating:         4.9,
		Image:          "https://images.pexels.com/photos/6647111/pexels-photo-6647111.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
}
