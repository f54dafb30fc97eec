package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// One-shot seed for the fixed initial content. Row ids are SHA1 namespace
// UUIDs derived from stable keys, inserted with ON CONFLICT DO NOTHING, so
// re-running the seed changes nothing.

func seedID(key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("portfolio-seed/"+key))
}

type seedSkill struct {
	name     string
	category string
	icon     string
}

type seedExperience struct {
	title       string
	company     string
	description string
	isCurrent   bool
}

type seedProject struct {
	key         string
	name        string
	category    string
	description string
	tags        []string
}

func main() {
	fmt.Println("seeding portfolio content...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	pool, err := pgxpool.New(context.Background(), os.Getenv("DB_DSN"))
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	if err := seedUserInfo(ctx, pool); err != nil {
		log.Fatalf("cannot seed user info: %v", err)
	}
	fmt.Println("✓ user info")

	if err := seedAbout(ctx, pool); err != nil {
		log.Fatalf("cannot seed about info: %v", err)
	}
	fmt.Println("✓ about info")

	if err := seedSkills(ctx, pool); err != nil {
		log.Fatalf("cannot seed skills: %v", err)
	}
	fmt.Println("✓ skills")

	if err := seedExperiences(ctx, pool); err != nil {
		log.Fatalf("cannot seed experience: %v", err)
	}
	fmt.Println("✓ experience")

	if err := seedProjects(ctx, pool); err != nil {
		log.Fatalf("cannot seed projects: %v", err)
	}
	fmt.Println("✓ projects")

	fmt.Println("seed completed successfully!")
}

func seedUserInfo(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		INSERT INTO user_info (id, full_name, job_title, email, phone, location, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := pool.Exec(ctx, query,
		seedID("default-user"),
		"أسامة محمد زكريا جنيدي",
		"خبير في التجارة الإلكترونية والتسويق الرقمي",
		"osama.mo.zakaria@gmail.com",
		"0559568530",
		"جدة، المملكة العربية السعودية",
		"2003-11-14",
	)
	return err
}

func seedAbout(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		INSERT INTO about_info (id, main_intro, paragraph1, paragraph2)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := pool.Exec(ctx, query,
		seedID("default-about"),
		"متخصص في إدارة المتاجر الإلكترونية وكتابة المحتوى والتسويق الرقمي. طالب في علوم البيانات والذكاء الاصطناعي مع شغف بالتعلم والتطوير المستمر.",
		"خريج ثانوي بامتياز بمعدل 97% وحالياً أدرس بكالوريوس علوم البيانات والذكاء الاصطناعي. أتمتع بخبرة عملية متنوعة في إدارة المتاجر الإلكترونية، كتابة المحتوى، التسويق الرقمي، والدعم التقني.",
		"شغوف بالتعلم الذاتي والتطوير المستمر، وأسعى دائماً لتقديم قيمة حقيقية من خلال عملي. أؤمن بأن الجمع بين الإبداع والتحليل هو مفتاح النجاح في العصر الرقمي.",
	)
	return err
}

func seedSkills(ctx context.Context, pool *pgxpool.Pool) error {
	skills := []seedSkill{
		{"كانفا - التصميم الجرافيكي", "تقنية", "💻"},
		{"سلة - إدارة المتاجر", "تقنية", "💻"},
		{"Microsoft Excel", "تقنية", "💻"},
		{"Microsoft Word", "تقنية", "💻"},
		{"Microsoft PowerPoint", "تقنية", "💻"},
		{"تحليل البيانات", "تقنية", "💻"},
		{"التسويق الإلكتروني", "تسويق", "📊"},
		{"كتابة المحتوى", "تسويق", "📊"},
		{"إدارة السوشيال ميديا", "تسويق", "📊"},
		{"التجارة الإلكترونية", "تسويق", "📊"},
		{"SEO & التسويق بالعمولة", "تسويق", "📊"},
		{"إدارة الحملات", "تسويق", "📊"},
		{"التفكير الإبداعي", "شخصية", "🎯"},
		{"التحليل والتخطيط", "شخصية", "🎯"},
		{"التعلم الذاتي", "شخصية", "🎯"},
		{"العمل الجماعي", "شخصية", "🎯"},
		{"إدارة الوقت", "شخصية", "🎯"},
		{"حل المشكلات", "شخصية", "🎯"},
	}

	query := `
		INSERT INTO skills (id, name, category, icon, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	for i, s := range skills {
		order := i + 1
		id := seedID(fmt.Sprintf("skill-%d", order))
		if _, err := pool.Exec(ctx, query, id, s.name, s.category, s.icon, order); err != nil {
			return err
		}
	}
	return nil
}

func seedExperiences(ctx context.Context, pool *pgxpool.Pool) error {
	experiences := []seedExperience{
		{
			title:       "سكرتير قسم ودعم تقني",
			company:     "شركة بنيان للتدريب المحدود",
			description: "إدارة المهام السكرتارية والإدارية للقسم، تقديم الدعم التقني وحل المشكلات التقنية بكفاءة عالية.",
			isCurrent:   true,
		},
		{
			title:       "مدير متجر إلكتروني",
			company:     "متجر ريڤير | Rever",
			description: "إدارة شاملة للمتجر الإلكتروني، الإشراف على العمليات اليومية وإدارة الموظفين، تحسين تجربة العملاء ورفع مستوى الخدمة.",
		},
		{
			title:       "مدير محتوى وإشراف تسويقي",
			company:     "متجر أنا تقني",
			description: "إدخال المنتجات وكتابة أوصافها التسويقية، الإشراف على صناع المحتوى والمسوقين بالعمولة في قسم التسويق.",
		},
		{
			title:       "كاتب محتوى سوشيال ميديا",
			company:     "شركة مجموعة بناء",
			description: "كتابة وإعداد محتوى جذاب لمنصات التواصل الاجتماعي، تطوير استراتيجيات المحتوى لزيادة التفاعل والوصول.",
		},
		{
			title:       "موظف خدمة عملاء",
			company:     "متجر إلكتروني",
			description: "التعامل مع استفسارات العملاء وحل مشاكلهم بكفاءة، توفير تجربة متميزة للعملاء وبناء علاقات طويلة الأمد.",
		},
	}

	query := `
		INSERT INTO experiences (id, title, company, description, is_current, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	for i, e := range experiences {
		order := i + 1
		id := seedID(fmt.Sprintf("exp-%d", order))
		if _, err := pool.Exec(ctx, query, id, e.title, e.company, e.description, e.isCurrent, order); err != nil {
			return err
		}
	}
	return nil
}

func seedProjects(ctx context.Context, pool *pgxpool.Pool) error {
	projects := []seedProject{
		{
			key:         "project-1",
			name:        "BLACK WOOD",
			category:    "تحف واكسسوارات خشبية",
			description: "متجر متخصص في المنتجات الخشبية الفاخرة والتحف الفنية. تصميم وإطلاق المتجر بالكامل مع تطوير الهوية البصرية وتجربة المستخدم.",
			tags:        []string{"تصميم", "إدارة المتجر", "كتابة المحتوى"},
		},
		{
			key:         "project-2",
			name:        "BEPAIR",
			category:    "منتجات العناية الشخصية",
			description: "متجر متكامل لمنتجات العناية الشخصية والجمال. تطوير استراتيجية تسويقية شاملة وإدارة عمليات البيع والشحن.",
			tags:        []string{"التسويق الرقمي", "إدارة العمليات", "خدمة العملاء"},
		},
		{
			key:         "project-3",
			name:        "BRANLY AI",
			category:    "منتجات رقمية ذكية",
			description: "متجر مبتكر للمنتجات الرقمية القائمة على الذكاء الاصطناعي. تطوير محتوى رقمي عالي الجودة وبناء منصة توزيع آلية.",
			tags:        []string{"الذكاء الاصطناعي", "منتجات رقمية", "أتمتة"},
		},
	}

	projectQuery := `
		INSERT INTO projects (id, name, category, description, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	tagQuery := `
		INSERT INTO tags (id, project_id, tag)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	for i, p := range projects {
		projectID := seedID(p.key)
		if _, err := pool.Exec(ctx, projectQuery, projectID, p.name, p.category, p.description, i+1); err != nil {
			return err
		}
		for j, t := range p.tags {
			tagID := seedID(fmt.Sprintf("%s/tag-%d", p.key, j+1))
			if _, err := pool.Exec(ctx, tagQuery, tagID, projectID, t); err != nil {
				return err
			}
		}
	}
	return nil
}
