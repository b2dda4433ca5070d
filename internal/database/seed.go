package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// seedText is one default page copy entry inserted on first boot.
type seedText struct {
	section string
	key     string
	value   string
	typ     string
	order   int
}

// defaultPageTexts is the baseline Spanish site copy. Editors overwrite
// these through the admin panel; the seeder never touches existing rows.
var defaultPageTexts = []seedText{
	{"hero", "badge", "Atención a domicilio en todo el Valle de México", "badge", 1},
	{"hero", "title", "Sueroterapia y enfermería profesional en tu hogar", "title", 2},
	{"hero", "subtitle", "Tratamientos intravenosos personalizados aplicados por personal de enfermería titulado.", "subtitle", 3},
	{"hero", "cta", "Agenda tu cita", "button", 4},

	{"therapies", "title", "Nuestras terapias", "title", 1},
	{"therapies", "subtitle", "Cócteles intravenosos formulados para cada necesidad", "subtitle", 2},

	{"nutrients", "title", "Nutrientes que utilizamos", "title", 1},
	{"nutrients", "subtitle", "Insumos con registro sanitario vigente", "subtitle", 2},

	{"nursing", "title", "Servicios de enfermería", "title", 1},
	{"nursing", "subtitle", "Cuidado profesional sin salir de casa", "subtitle", 2},

	{"testimonials", "title", "Lo que dicen nuestros pacientes", "title", 1},

	{"faq", "title", "Preguntas frecuentes", "title", 1},

	{"glossary", "title", "Glosario", "title", 1},
	{"glossary", "subtitle", "Términos que usamos en nuestros tratamientos", "subtitle", 2},

	{"contact", "title", "Contáctanos", "title", 1},
	{"contact", "subtitle", "Respondemos por WhatsApp en minutos", "subtitle", 2},
	{"contact", "cta", "Enviar mensaje", "button", 3},

	{"footer", "tagline", "Bienestar que llega hasta tu puerta.", "body", 1},
}

// Seed populates the database with initial data: the admin user with the
// configured credentials and the baseline site copy. It is idempotent and
// skips anything that exists. The admin will be prompted to set up 2FA on
// first login.
func Seed(db *sql.DB, adminEmail, adminPassword string) error {
	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	return seedPageTexts(db)
}

func seedAdmin(db *sql.DB, adminEmail, adminPassword string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		slog.Info("users already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert the admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, totp_enabled)
		VALUES ($1, $2, $3, $4)
	`, adminEmail, string(hash), "Drip & Care", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with admin user", "email", adminEmail)
	return nil
}

func seedPageTexts(db *sql.DB) error {
	for _, t := range defaultPageTexts {
		_, err := db.Exec(`
			INSERT INTO page_texts (section_key, text_key, text_value, text_type, order_index)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (section_key, text_key) DO NOTHING
		`, t.section, t.key, t.value, t.typ, t.order)
		if err != nil {
			return fmt.Errorf("seed page text %s/%s: %w", t.section, t.key, err)
		}
	}
	slog.Info("baseline page texts seeded", "count", len(defaultPageTexts))
	return nil
}
