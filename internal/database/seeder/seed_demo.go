package seeder

import (
	"context"
	"fmt"

	"jobbridge/internal/database"
	"jobbridge/internal/domain/job"

	"github.com/google/uuid"
)

// DemoSeeder loads a handful of providers, jobs and beneficiaries so a fresh
// install has something to match. Rows are keyed by company name, job title
// and phone number, so running it twice adds nothing.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

type demoJob struct {
	Title          string
	Category       job.Category
	Description    string
	RequiredSkills []string
	Location       string
	Openings       int
}

type demoProvider struct {
	CompanyName   string
	ContactPerson string
	PhoneNumber   string
	Email         string
	Industry      string
	Jobs          []demoJob
}

type demoBeneficiary struct {
	FullName    string
	PhoneNumber string
	Education   string
	Skills      []string
}

var demoProviders = []demoProvider{
	{
		CompanyName:   "Sunrise Builders",
		ContactPerson: "Ramesh Kumar",
		PhoneNumber:   "9810000001",
		Email:         "hr@sunrisebuilders.example",
		Industry:      "Construction",
		Jobs: []demoJob{
			{
				Title:          "Site Carpenter",
				Category:       job.CategoryConstructionLabor,
				Description:    "Formwork and finishing carpentry on residential sites.",
				RequiredSkills: []string{"Carpenter"},
				Location:       "Gurugram",
				Openings:       4,
			},
			{
				Title:          "Maintenance Technician",
				Category:       job.CategoryConstructionLabor,
				Description:    "Plumbing and electrical upkeep for finished blocks.",
				RequiredSkills: []string{"Plumbing", "Electrician"},
				Location:       "Gurugram",
				Openings:       2,
			},
		},
	},
	{
		CompanyName:   "SafeHands Facility Services",
		ContactPerson: "Anita Sharma",
		PhoneNumber:   "9810000002",
		Email:         "jobs@safehands.example",
		Industry:      "Facility management",
		Jobs: []demoJob{
			{
				Title:          "Night Security Guard",
				Category:       job.CategorySecurityAuxiliary,
				Description:    "Gate duty and patrols for an office campus.",
				RequiredSkills: []string{"Security Guard"},
				Location:       "Noida",
				Openings:       6,
			},
			{
				Title:          "Housekeeping Staff",
				Category:       job.CategoryDomesticHousekeeping,
				Description:    "Daily cleaning of guest rooms and common areas.",
				RequiredSkills: []string{"Maid"},
				Location:       "Noida",
				Openings:       5,
			},
		},
	},
	{
		CompanyName:   "Annapurna Kitchens",
		ContactPerson: "Farhan Ali",
		PhoneNumber:   "9810000003",
		Email:         "kitchen@annapurna.example",
		Industry:      "Food service",
		Jobs: []demoJob{
			{
				Title:          "Line Cook",
				Category:       job.CategoryRetailFoodServices,
				Description:    "Prepare meals for a canteen serving 300 people.",
				RequiredSkills: []string{"Cook"},
				Location:       "Delhi",
				Openings:       3,
			},
		},
	},
}

var demoBeneficiaries = []demoBeneficiary{
	{FullName: "Sunita Devi", PhoneNumber: "9870000001", Education: "8th pass", Skills: []string{"Cook", "Maid"}},
	{FullName: "Mohan Lal", PhoneNumber: "9870000002", Education: "10th pass", Skills: []string{"Plumbing"}},
	{FullName: "Imran Khan", PhoneNumber: "9870000003", Education: "ITI electrician", Skills: []string{"Electrician", "Plumbing"}},
	{FullName: "Rekha Yadav", PhoneNumber: "9870000004", Skills: []string{"Security Guard"}},
	{FullName: "Vijay Singh", PhoneNumber: "9870000005", Education: "12th pass", Skills: []string{"Carpenter", "Security Guard"}},
}

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "providers", "id", "company_name", "contact_person", "phone_number", "email", "industry"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "provider_id", "title", "category", "description", "required_skills", "location", "openings", "status"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "beneficiaries", "id", "full_name", "phone_number", "education", "skills"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if err := seedDemoJobs(ctx, tx); err != nil {
			return err
		}
		return seedDemoBeneficiaries(ctx, tx)
	})
}

func seedDemoJobs(ctx context.Context, tx database.Tx) error {
	for _, p := range demoProviders {
		providerID, err := findOrCreateProvider(ctx, tx, p)
		if err != nil {
			return err
		}
		for _, j := range p.Jobs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO jobs (id, provider_id, title, category, description, required_skills, location, openings, status)
				SELECT $1::uuid, $2::uuid, $3::text, $4::text, $5::text, $6::text[], $7::text, $8::int, 'active'
				WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE provider_id = $2 AND title = $3)`,
				uuid.New(), providerID, j.Title, string(j.Category), j.Description, j.RequiredSkills, j.Location, j.Openings,
			); err != nil {
				return fmt.Errorf("insert job %q: %w", j.Title, err)
			}
		}
	}
	return nil
}

func seedDemoBeneficiaries(ctx context.Context, tx database.Tx) error {
	for _, b := range demoBeneficiaries {
		var education *string
		if b.Education != "" {
			education = &b.Education
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO beneficiaries (id, full_name, phone_number, education, skills)
			SELECT $1::uuid, $2::text, $3::text, $4::text, $5::text[]
			WHERE NOT EXISTS (SELECT 1 FROM beneficiaries WHERE phone_number = $3)`,
			uuid.New(), b.FullName, b.PhoneNumber, education, b.Skills,
		); err != nil {
			return fmt.Errorf("insert beneficiary %q: %w", b.FullName, err)
		}
	}
	return nil
}

func findOrCreateProvider(ctx context.Context, tx database.Tx, p demoProvider) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM providers WHERE company_name = $1 LIMIT 1`, p.CompanyName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !database.IsNoRows(err) {
		return uuid.Nil, fmt.Errorf("find provider %q: %w", p.CompanyName, err)
	}

	id = uuid.New()
	if _, err := tx.Exec(ctx,
		`INSERT INTO providers (id, company_name, contact_person, phone_number, email, industry)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, p.CompanyName, p.ContactPerson, p.PhoneNumber, p.Email, p.Industry,
	); err != nil {
		return uuid.Nil, fmt.Errorf("insert provider %q: %w", p.CompanyName, err)
	}
	return id, nil
}
