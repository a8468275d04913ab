package stubapi

import "github.com/skymentor/skymentor-client/internal/models"

// Seed loads a small development dataset so the browse, login, and booking
// flows work against a fresh stub without manual setup
func Seed(store *Store) {
	store.CreateMentor(&models.CreateMentorRequest{
		FirstName:         "Sarah",
		LastName:          "Johnson",
		Email:             "sarah.johnson@example.com",
		PhoneNumber:       "+919800000001",
		CurrentRole:       "Senior Airline Captain",
		YearsOfExperience: 15,
		AreaOfExpertise:   []string{"Commercial Aviation", "DGCA Ground School"},
		AvailabilitySlots: []string{"Monday 09:00-12:00", "Wednesday 14:00-17:00"},
		ProfileBio:        "A320 captain mentoring CPL students through ground school and airline prep.",
		LanguagesSpoken:   []string{"English", "Hindi"},
		MentoringFee:      1500,
		LevelComfortable:  models.ComfortAllLevels,
	})
	store.CreateMentor(&models.CreateMentorRequest{
		FirstName:         "Raj",
		LastName:          "Patel",
		Email:             "raj.patel@example.com",
		PhoneNumber:       "+919800000002",
		CurrentRole:       "Flight Instructor",
		YearsOfExperience: 8,
		AreaOfExpertise:   []string{"Simulator Training", "Exam Preparation"},
		AvailabilitySlots: []string{"Tuesday 10:00-13:00", "Saturday 09:00-11:00"},
		ProfileBio:        "CFI helping student pilots clear checkrides and DGCA written exams.",
		LanguagesSpoken:   []string{"English", "Gujarati"},
		MentoringFee:      1000,
		LevelComfortable:  models.ComfortBeginner,
	})
	store.CreateMentor(&models.CreateMentorRequest{
		FirstName:         "Meera",
		LastName:          "Nair",
		Email:             "meera.nair@example.com",
		PhoneNumber:       "+919800000003",
		CurrentRole:       "Aviation Career Counselor",
		YearsOfExperience: 12,
		AreaOfExpertise:   []string{"Flight School Selection", "Abroad Options"},
		AvailabilitySlots: []string{"Thursday 16:00-19:00"},
		ProfileBio:        "Guides aspiring pilots through flight school selection in India and abroad.",
		LanguagesSpoken:   []string{"English", "Malayalam"},
		MentoringFee:      1200,
		LevelComfortable:  models.ComfortIntermediate,
	})

	store.CreateMentee(&models.CreateMenteeRequest{
		FullName:          "Aisha Khan",
		Email:             "aisha.khan@example.com",
		PhoneNumber:       "+919800000101",
		AgeGroup:          "18-24",
		CurrentStage:      "preparing-ground-school",
		KeyGoal:           "Clear DGCA exams on the first attempt",
		PreferredLanguage: "English",
		Budget:            2000,
	})

	store.CreateAdmin(&models.CreateAdminRequest{
		Name:        "Ops Admin",
		Email:       "admin@example.com",
		PhoneNumber: "+919800000201",
	})
}
