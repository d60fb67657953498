package commands

import (
	"fmt"
	"hrmis/backend/internal/pkg/repository/postgresql"
	"log"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{

	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('EMPLOYEE', 'ADMIN','DASHBOARD','QRCODE');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            employee_id text not null,
            password text not null,
            role user_role,
            full_name text,
            phone varchar(255),
            email varchar(255),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create user with employee_id: Admin01, password: 1",
		Query: `
        INSERT INTO users(employee_id, role, password)
        SELECT 'Admin01', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT employee_id FROM users WHERE employee_id = 'Admin01');
        `,
	},
	{
		Index:       4,
		Description: "Create user with employee_id: QrCode01, password: 1",
		Query: `
        INSERT INTO users(employee_id, role, password)
        SELECT 'QrCode01', 'QRCODE', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT employee_id FROM users WHERE employee_id = 'QrCode01');
        `,
	},
	{
		Index:       5,
		Description: "Create user with employee_id: Dashboard01, password: 1",
		Query: `
        INSERT INTO users(employee_id, role, password)
        SELECT 'Dashboard01', 'DASHBOARD', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT employee_id FROM users WHERE employee_id = 'Dashboard01');
        `,
	},
	{
		Index:       6,
		Description: "Create table: office",
		Query: `
        CREATE TABLE IF NOT EXISTS office (
            id serial primary key,
            name text not null,
            location text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: position.",
		Query: `
        CREATE TABLE IF NOT EXISTS position (
            id serial primary key,
            name text not null,
            office_id int references office(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: project.",
		Query: `
        CREATE TABLE IF NOT EXISTS project (
            id serial primary key,
            name text not null,
            code varchar(50) not null,
            description text,
            active boolean default true,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       9,
		Description: "Create table: leave_type.",
		Query: `
        CREATE TABLE IF NOT EXISTS leave_type (
            id serial primary key,
            name text not null,
            max_days int,
            paid boolean default true,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: capability.",
		Query: `
        CREATE TABLE IF NOT EXISTS capability (
            id serial primary key,
            name text not null,
            description text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       11,
		Description: "Alter table users",
		Query: `
        ALTER TABLE users
        ADD COLUMN IF NOT EXISTS office_id int references office(id),
        ADD COLUMN IF NOT EXISTS position_id int references position(id),
        ADD COLUMN IF NOT EXISTS project_id int references project(id);`,
	},
	{
		Index:       12,
		Description: "Create table: attendance_event.",
		Query: `
        CREATE TABLE attendance_event (
            id SERIAL PRIMARY KEY,
            user_id INT NOT NULL REFERENCES users(id),
            work_day DATE NOT NULL,
            event_time TIME NOT NULL,
            state VARCHAR(50) NOT NULL,
            latitude FLOAT,
            longitude FLOAT,
            source VARCHAR(50),
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );
        CREATE INDEX attendance_event_user_day_idx ON attendance_event (user_id, work_day, event_time);`,
	},
	{
		Index:       13,
		Description: "Create table: announcement.",
		Query: `
        CREATE TABLE announcement (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            body TEXT NOT NULL,
            office_id INT REFERENCES office(id),
            pinned BOOLEAN DEFAULT false,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       14,
		Description: "Create table: notification.",
		Query: `
        CREATE TABLE notification (
            id SERIAL PRIMARY KEY,
            user_id INT NOT NULL REFERENCES users(id),
            announcement_id INT REFERENCES announcement(id),
            title TEXT NOT NULL,
            body TEXT,
            read_at TIMESTAMP,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );
        CREATE INDEX notification_user_idx ON notification (user_id, read_at);`,
	},
	{
		Index:       15,
		Description: "Create table: company_info.",
		Query: `
        CREATE TABLE company_info (
            id SERIAL PRIMARY KEY,
            company_name VARCHAR(250) NOT NULL,
            url VARCHAR(100),
            latitude FLOAT NOT NULL,
            longitude FLOAT NOT NULL,
            radius FLOAT NOT NULL,
            start_time TIME,
            end_time TIME,
            late_time TIME,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT REFERENCES users(id),
            updated_at TIMESTAMP,
            updated_by INT REFERENCES users(id),
            deleted_at TIMESTAMP,
            deleted_by INT REFERENCES users(id)
        );`,
	},
	{
		Index:       16,
		Description: "Insert data for table: company_info.",
		Query: `
        INSERT INTO company_info (
        id,
        company_name,
        url,
        latitude,
        longitude,
        radius,
        start_time,
        end_time,
        late_time,
        created_by,
        updated_by
    ) VALUES (
        1,
        'HRMIS',
        '',
        35.7031509,
        139.7745439,
        3000.0,
        '09:00:00',
        '18:00:00',
        '09:20:00',
        1,
        1
);`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
