package database

import (
	"errors"
	"fmt"

	"github.com/planetnakshatra/api/internal/models"
	"gorm.io/gorm"
)

// SeedServices inserts the consultation catalog, updating any service that
// already exists under the same title so reseeding is safe.
func SeedServices(db *gorm.DB) error {
	for _, svc := range catalog() {
		var existing models.Service
		err := db.Where("title = ?", svc.Title).First(&existing).Error
		switch {
		case err == nil:
			svc.ID = existing.ID
			if err := db.Model(&existing).Updates(&svc).Error; err != nil {
				return fmt.Errorf("update service %q: %w", svc.Title, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&svc).Error; err != nil {
				return fmt.Errorf("create service %q: %w", svc.Title, err)
			}
		default:
			return fmt.Errorf("lookup service %q: %w", svc.Title, err)
		}
	}
	return nil
}

func catalog() []models.Service {
	return []models.Service{
		{
			Title:            "The Celestial Strategy™",
			Description:      "Long-term strategic guidance for CXOs, industrialists, and public figures.",
			ShortDescription: str("Long-term strategic guidance for CXOs, industrialists, and public figures."),
			FullDescription:  str("A comprehensive long-term strategic guidance program designed for CXOs, industrialists, and public figures: birth chart, planetary transits, and dasha periods analysed to support critical decisions and long-term planning."),
			Category:         "Executive",
			IconName:         str("Crown"),
			Duration:         90,
			Active:           true,
		},
		{
			Title:            "The Destiny Architecture™",
			Description:      "Structuring personal and professional life with planetary cycles.",
			ShortDescription: str("Structuring personal and professional life with planetary cycles."),
			FullDescription:  str("Align personal and professional decisions with planetary cycles: detailed chart analysis identifies your strongest periods and the right timing for major life events and career moves."),
			Category:         "Personal",
			IconName:         str("Building2"),
			Duration:         60,
			Active:           true,
		},
		{
			Title:            "The Maharaja Protocol™",
			Description:      "Generational legacy and succession planning for distinguished families.",
			ShortDescription: str("Generational legacy and succession planning for distinguished families."),
			FullDescription:  str("Astrologically guided succession planning for families maintaining multi-generational legacies: collective and individual chart analysis for wealth transfer, harmony, and preparing next-generation leaders."),
			Category:         "Legacy",
			IconName:         str("Users"),
			Duration:         90,
			Active:           true,
		},
		{
			Title:            "Cosmic Capital Advisory™",
			Description:      "Precision timing for wealth accumulation and business decisions.",
			ShortDescription: str("Precision timing for wealth accumulation and business decisions."),
			FullDescription:  str("Financial astrology combined with practical guidance: planetary positions affecting wealth houses analysed to time investments, transactions, and business ventures."),
			Category:         "Wealth",
			IconName:         str("TrendingUp"),
			Duration:         60,
			Active:           true,
		},
		{
			Title:            "The Boardroom Muhurta™",
			Description:      "Timing validation for critical corporate decisions and launches.",
			ShortDescription: str("Timing validation for critical corporate decisions and launches."),
			FullDescription:  str("Traditional muhurta principles applied to modern business: the most favourable dates and times for product launches, mergers, acquisitions, and major announcements."),
			Category:         "Corporate",
			IconName:         str("Calendar"),
			Duration:         45,
			Active:           true,
		},
		{
			Title:            "The Legacy Continuum™",
			Description:      "Securing next-generation stability and sustained growth.",
			ShortDescription: str("Securing next-generation stability and sustained growth."),
			FullDescription:  str("Strategic astrological planning across generations: patterns, opportunities, and challenges identified to sustain family wealth, values, and continuity."),
			Category:         "Legacy",
			IconName:         str("Shield"),
			Duration:         60,
			Active:           true,
		},
		{
			Title:            "Union Intelligence™",
			Description:      "Compatibility advisory for elite marriages and business partnerships.",
			ShortDescription: str("Compatibility advisory for elite marriages and business partnerships."),
			FullDescription:  str("Comprehensive compatibility analysis for marriages, partnerships, and strategic alliances: chart comparison, timing for commitments, and remedies for challenging aspects."),
			Category:         "Relationships",
			IconName:         str("Heart"),
			Duration:         60,
			Active:           true,
		},
		{
			Title:            "The Spatial Sovereignty™",
			Description:      "Vastu guidance for power, control, and positive influence.",
			ShortDescription: str("Vastu guidance for power, control, and positive influence."),
			FullDescription:  str("A full Vastu consultation for living and working spaces: layout, directions, and energy flow analysed with specific recommendations for success, health, and prosperity."),
			Category:         "Vastu",
			IconName:         str("Home"),
			Duration:         90,
			Active:           true,
		},
		{
			Title:            "The Energetic Optimization™",
			Description:      "Precision remedies designed for high performers.",
			ShortDescription: str("Precision remedies designed for high performers."),
			FullDescription:  str("Targeted astrological remedies for peak performance: gemstone recommendations, ritual guidance, mantra prescriptions, and lifestyle adjustments tailored to your chart."),
			Category:         "Remedies",
			IconName:         str("Zap"),
			Duration:         45,
			Active:           true,
		},
		{
			Title:            "The Black Swan Protocol™",
			Description:      "Crisis timing and emergency advisory for unforeseen challenges.",
			ShortDescription: str("Crisis timing and emergency advisory for unforeseen challenges."),
			FullDescription:  str("Emergency advisory for sudden reversals, legal issues, or health crises: current transits and dasha periods analysed for immediate remedies and clarity on when the situation will improve."),
			Category:         "Crisis",
			IconName:         str("AlertTriangle"),
			Duration:         60,
			Active:           true,
		},
		{
			Title:            "The Inner Circle Retainer™",
			Description:      "Ongoing subscription-based strategic astrological consultation.",
			ShortDescription: str("Ongoing subscription-based strategic astrological consultation."),
			FullDescription:  str("A premium retainer with regular consultations, monthly chart reviews, transit analyses, and priority access for urgent questions, including quarterly deep-dive sessions."),
			Category:         "Retainer",
			IconName:         str("Star"),
			Duration:         120,
			Active:           true,
		},
	}
}

func str(s string) *string {
	return &s
}
