package seeders

import (
	"time"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type variantFixture struct {
	name          string
	price         string
	originalPrice string
}

type productFixture struct {
	name          string
	brand         string
	description   string
	price         string
	originalPrice string
	category      string
	rating        float64
	reviews       int
	benefits      []string
	images        []string
	isNew         bool
	isBestseller  bool
	variants      []variantFixture
}

var categoryFixtures = []struct {
	name string
	slug string
}{
	{"Perfumes", "perfumes"},
	{"Skincare", "skincare"},
	{"Maquiagem", "maquiagem"},
	{"Cabelos", "cabelos"},
	{"Corpo & Banho", "corpo"},
}

var productFixtures = []productFixture{
	{
		name:          "Eau de Parfum Lumière Dorée",
		brand:         "Maison Fleur",
		description:   "Uma fragrância sofisticada com notas de jasmim, rosa e sândalo. Perfeita para mulheres que desejam deixar uma marca inesquecível por onde passam.",
		price:         "289.90",
		originalPrice: "389.90",
		category:      "perfumes",
		rating:        4.8,
		reviews:       324,
		benefits:      []string{"Longa duração (12h+)", "Notas florais e amadeiradas", "Frasco premium reutilizável"},
		images:        []string{"/images/products/perfume-1.jpg", "/images/products/perfume-1.jpg"},
		isBestseller:  true,
		variants: []variantFixture{
			{name: "50ml", price: "289.90", originalPrice: "389.90"},
			{name: "100ml", price: "429.90"},
		},
	},
	{
		name:          "Sérum Vitamina C Radiance",
		brand:         "Derma Lux",
		description:   "Sérum concentrado com 20% de Vitamina C pura estabilizada. Reduz manchas, uniformiza o tom da pele e proporciona luminosidade intensa.",
		price:         "159.90",
		originalPrice: "199.90",
		category:      "skincare",
		rating:        4.9,
		reviews:       567,
		benefits:      []string{"20% Vitamina C pura", "Reduz manchas em 4 semanas", "Textura leve e rápida absorção"},
		images:        []string{"/images/products/skincare-1.jpg"},
		isBestseller:  true,
	},
	{
		name:        "Batom Matte Velvet Rouge",
		brand:       "Beauté Paris",
		description: "Batom de acabamento matte aveludado com cor intensa e duradoura. Fórmula enriquecida com óleos nutritivos que mantêm os lábios hidratados.",
		price:       "89.90",
		category:    "maquiagem",
		rating:      4.7,
		reviews:     213,
		benefits:    []string{"Cor intensa por 8 horas", "Acabamento matte aveludado", "Fórmula hidratante"},
		images:      []string{"/images/products/makeup-1.jpg"},
		isNew:       true,
	},
	{
		name:          "Paleta de Sombras Nude Glow",
		brand:         "Beauté Paris",
		description:   "Paleta com 15 tons nudes e rosados, do matte ao cintilante. Pigmentação intensa, blendável e de longa duração.",
		price:         "199.90",
		originalPrice: "259.90",
		category:      "maquiagem",
		rating:        4.8,
		reviews:       445,
		benefits:      []string{"15 cores versáteis", "Alta pigmentação", "Longa duração sem craseamento"},
		images:        []string{"/images/products/makeup-2.jpg"},
		isBestseller:  true,
	},
	{
		name:        "Perfume Noir Absolu",
		brand:       "Maison Fleur",
		description: "Fragrância masculina intensa com notas de couro, âmbar e vetiver. Uma assinatura olfativa marcante e sofisticada.",
		price:       "349.90",
		category:    "perfumes",
		rating:      4.9,
		reviews:     189,
		benefits:    []string{"Fragrância unissex", "Duração de 14 horas", "Notas amadeiradas e especiadas"},
		images:      []string{"/images/products/perfume-3.jpg"},
		isNew:       true,
		variants: []variantFixture{
			{name: "50ml", price: "349.90"},
			{name: "100ml", price: "499.90"},
		},
	},
	{
		name:          "Creme Hidratante Anti-Idade",
		brand:         "Derma Lux",
		description:   "Creme facial anti-idade com ácido hialurônico e retinol encapsulado. Preenche rugas, firma e hidrata profundamente.",
		price:         "219.90",
		originalPrice: "279.90",
		category:      "skincare",
		rating:        4.6,
		reviews:       334,
		benefits:      []string{"Ácido hialurônico triplo peso", "Retinol encapsulado", "Resultados em 2 semanas"},
		images:        []string{"/images/products/skincare-2.jpg"},
	},
	{
		name:          "Kit Capilar Reparação Intensa",
		brand:         "Hair Essence",
		description:   "Kit com shampoo, condicionador e máscara para cabelos danificados. Fórmula com queratina e óleo de argan.",
		price:         "149.90",
		originalPrice: "189.90",
		category:      "cabelos",
		rating:        4.5,
		reviews:       278,
		benefits:      []string{"Reparação profunda", "Queratina hidrolisada", "Óleo de argan premium"},
		images:        []string{"/images/products/haircare-1.jpg"},
	},
	{
		name:         "Protetor Solar Facial FPS 50",
		brand:        "Derma Lux",
		description:  "Protetor solar facial com textura ultraleve e acabamento invisível. Proteção UVA/UVB com ativos anti-envelhecimento.",
		price:        "79.90",
		category:     "skincare",
		rating:       4.7,
		reviews:      623,
		benefits:     []string{"Textura invisível", "Anti-envelhecimento", "Não obstrui poros"},
		images:       []string{"/images/products/skincare-3.jpg"},
		isBestseller: true,
	},
	{
		name:        "Base Fluida Natural Finish",
		brand:       "Beauté Paris",
		description: "Base fluida com cobertura média e acabamento natural. 24 horas de duração com ativos skincare que cuidam da pele.",
		price:       "129.90",
		category:    "maquiagem",
		rating:      4.6,
		reviews:     198,
		benefits:    []string{"Cobertura modulável", "24h de duração", "Ativos anti-envelhecimento"},
		images:      []string{"/images/products/makeup-3.jpg"},
		isNew:       true,
	},
	{
		name:          "Eau de Toilette Fleur Rosée",
		brand:         "Maison Fleur",
		description:   "Fragrância floral delicada com notas de peônia, lírio e musk. Ideal para o dia a dia sofisticado.",
		price:         "199.90",
		originalPrice: "249.90",
		category:      "perfumes",
		rating:        4.8,
		reviews:       412,
		benefits:      []string{"Notas florais frescas", "Ideal para o dia a dia", "Frasco artesanal"},
		images:        []string{"/images/products/perfume-4.jpg"},
	},
	{
		name:        "Eau de Parfum Rosé Élégance",
		brand:       "Maison Fleur",
		description: "Perfume feminino com notas de rosa damascena, baunilha e almíscar. Uma fragrância romântica e envolvente.",
		price:       "259.90",
		category:    "perfumes",
		rating:      4.7,
		reviews:     156,
		benefits:    []string{"Rosa damascena natural", "Notas de fundo envolventes", "Frasco colecionável"},
		images:      []string{"/images/products/perfume-2.jpg"},
		isNew:       true,
	},
	{
		name:          "Creme Corporal Hydra Gold",
		brand:         "Derma Lux",
		description:   "Creme corporal ultra-hidratante com partículas de ouro e manteiga de karité. Deixa a pele macia, luminosa e perfumada.",
		price:         "99.90",
		originalPrice: "139.90",
		category:      "corpo",
		rating:        4.5,
		reviews:       287,
		benefits:      []string{"Partículas de ouro", "48h de hidratação", "Fragrância sofisticada"},
		images:        []string{"/images/products/bodycare-1.jpg"},
		isNew:         true,
	},
	{
		name:        "Gloss Labial Liphoney Mel Brilho Irresistível Franciny Ehlke Mel",
		brand:       "Franciny Ehlke",
		description: "O Gloss Labial Liphoney Mel proporciona um brilho irresistível com uma textura confortável e hidratação profunda. Inspirado na doçura e brilho do mel, é o toque final perfeito para qualquer maquiagem.",
		price:       "26.00",
		category:    "maquiagem",
		rating:      5.0,
		reviews:     12,
		benefits:    []string{"Brilho intenso", "Hidratação prolongada", "Textura não pegajosa"},
		images:      []string{"/images/products/liphoney-mel.png"},
		isNew:       true,
	},
	{
		name:        "Sérum Facial VITAMINA C-10",
		brand:       "Principia",
		description: "Sérum com 10% de Vitamina C e 0,5% de Ácido Ferúlico com alta eficácia contra linhas finas, textura irregular e hiperpigmentação. Proporciona luminosidade e rejuvenescimento para todos os tipos de pele.",
		price:       "32.00",
		category:    "skincare",
		rating:      4.9,
		reviews:     84,
		benefits:    []string{"10% Vitamina C Pura", "0,5% Ácido Ferúlico", "Combate hiperpigmentação e linhas finas"},
		images:      []string{"/images/products/vitac10-1.png", "/images/products/vitac10-2.png", "/images/products/vitac10-3.png"},
		isNew:       true,
	},
}

// SeedCatalog grava categorias e o catálogo inicial. Idempotente: produtos
// já presentes (mesmo slug) são pulados, então o comando pode rodar de novo.
func SeedCatalog(db *gorm.DB) error {
	categoryBySlug := make(map[string]*models.Category, len(categoryFixtures))
	for _, c := range categoryFixtures {
		category := &models.Category{
			ID:   uuid.New().String(),
			Name: c.name,
			Slug: c.slug,
		}
		if err := db.Where("slug = ?", c.slug).FirstOrCreate(category).Error; err != nil {
			return err
		}
		categoryBySlug[c.slug] = category
	}

	for _, f := range productFixtures {
		productSlug := slug.Make(f.name)

		var count int64
		if err := db.Model(&models.Product{}).Where("slug = ?", productSlug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		product := buildProduct(f, productSlug, categoryBySlug[f.category].ID)
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}

	return nil
}

func buildProduct(f productFixture, productSlug, categoryID string) *models.Product {
	productID := uuid.New().String()
	now := time.Now()

	product := &models.Product{
		ID:           productID,
		Name:         f.name,
		Slug:         productSlug,
		Brand:        f.brand,
		Description:  f.description,
		Price:        decimal.RequireFromString(f.price),
		Rating:       f.rating,
		ReviewCount:  f.reviews,
		IsNew:        f.isNew,
		IsBestseller: f.isBestseller,
		CategoryID:   categoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if f.originalPrice != "" {
		op := decimal.RequireFromString(f.originalPrice)
		product.OriginalPrice = &op
	}

	for i, label := range f.benefits {
		product.Benefits = append(product.Benefits, models.ProductBenefit{
			ID:        uuid.New().String(),
			ProductID: productID,
			Label:     label,
			Position:  i,
		})
	}

	for i, path := range f.images {
		product.ProductImages = append(product.ProductImages, models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Path:      path,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, v := range f.variants {
		variant := models.ProductVariant{
			ID:        uuid.New().String(),
			ProductID: productID,
			Name:      v.name,
			Price:     decimal.RequireFromString(v.price),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if v.originalPrice != "" {
			op := decimal.RequireFromString(v.originalPrice)
			variant.OriginalPrice = &op
		}
		product.Variants = append(product.Variants, variant)
	}

	return product
}
