package database

import (
	"database/sql"

	"github.com/gofiber/fiber/v2/log"
)

// Statements are idempotent so they can run on every start.
var migrations = []struct {
	name  string
	query string
}{
	{"create unidades", `
		CREATE TABLE IF NOT EXISTS unidades (
			id BIGSERIAL PRIMARY KEY,
			nome TEXT NOT NULL UNIQUE,
			endereco TEXT,
			cidade TEXT,
			estado TEXT,
			telefone TEXT,
			email TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		)`},
	{"create cursos", `
		CREATE TABLE IF NOT EXISTS cursos (
			id BIGSERIAL PRIMARY KEY,
			nome TEXT NOT NULL,
			area_conhecimento TEXT,
			duracao_semestres INT,
			tipo_grau TEXT,
			ativo BOOLEAN NOT NULL DEFAULT true
		)`},
	{"create turmas", `
		CREATE TABLE IF NOT EXISTS turmas (
			id BIGSERIAL PRIMARY KEY,
			codigo TEXT NOT NULL,
			curso_id BIGINT NOT NULL REFERENCES cursos(id),
			unidade_id BIGINT NOT NULL REFERENCES unidades(id),
			turno TEXT,
			semestre TEXT,
			data_inicio DATE,
			vagas_total INT NOT NULL DEFAULT 0,
			vagas_ocupadas INT NOT NULL DEFAULT 0,
			ativo BOOLEAN NOT NULL DEFAULT true
		)`},
	{"create turmas_detalhadas", `
		CREATE OR REPLACE VIEW turmas_detalhadas AS
		SELECT t.id, t.codigo AS turma_codigo, t.curso_id, c.nome AS curso_nome,
		       t.unidade_id, u.nome AS unidade_nome, t.turno, t.semestre, t.data_inicio,
		       t.vagas_total, t.vagas_ocupadas, t.ativo
		FROM turmas t
		JOIN cursos c ON c.id = t.curso_id
		JOIN unidades u ON u.id = t.unidade_id`},
	{"create usuarios", `
		CREATE TABLE IF NOT EXISTS usuarios (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"create usuarios_permitidos", `
		CREATE TABLE IF NOT EXISTS usuarios_permitidos (
			email TEXT PRIMARY KEY,
			tipo_usuario TEXT NOT NULL CHECK (tipo_usuario IN ('aluno', 'instituicao')),
			instituicao TEXT NOT NULL,
			ativo BOOLEAN NOT NULL DEFAULT true,
			curso TEXT,
			turma TEXT
		)`},
	{"create entregas", `
		CREATE TABLE IF NOT EXISTS entregas (
			id BIGSERIAL PRIMARY KEY,
			imagem_url TEXT NOT NULL,
			quantidade DOUBLE PRECISION NOT NULL CHECK (quantidade > 0),
			tipo_residuo TEXT NOT NULL,
			curso TEXT NOT NULL,
			turma TEXT NOT NULL,
			unidade TEXT NOT NULL,
			pontos_obtidos INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pendente' CHECK (status IN ('pendente', 'aprovada', 'rejeitada')),
			data_entrega TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			usuario_id UUID
		)`},
	// rankingturmas depends on quantidade, so it is dropped before the column
	// type is settled and recreated below.
	{"drop rankingturmas", `DROP VIEW IF EXISTS rankingturmas`},
	{"entregas quantidade type", `
		ALTER TABLE entregas
		ALTER COLUMN quantidade TYPE DOUBLE PRECISION`},
	{"index entregas", `
		CREATE INDEX IF NOT EXISTS idx_entregas_turma_curso_unidade
		ON entregas (turma, curso, unidade)`},
	{"create rankingturmas", `
		CREATE OR REPLACE VIEW rankingturmas AS
		SELECT turma, curso, unidade,
		       COUNT(*)::INT AS total_entregas,
		       COALESCE(SUM(quantidade), 0)::DOUBLE PRECISION AS total_reciclado_kg,
		       COALESCE(SUM(pontos_obtidos), 0)::INT AS total_pontos
		FROM entregas
		WHERE status IN ('aprovada', 'pendente')
		GROUP BY turma, curso, unidade`},
}

// RunMigrations creates the schema when it does not exist yet.
func RunMigrations(db *sql.DB) error {
	log.Info("running database migrations")
	for _, m := range migrations {
		if _, err := db.Exec(m.query); err != nil {
			log.Errorf("migration %q failed: %v", m.name, err)
			return err
		}
	}
	log.Info("database migrations completed")
	return nil
}
