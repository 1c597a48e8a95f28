package services

import (
	domain "github.com/petra-home/storefront/internal/domain"
)

// builtinProducts returns the built-in catalog used to seed an empty remote
// store and as the read-only fallback when the initial load fails.
func builtinProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "LINEN CALM JÜT HALI",
			NameEN:        "LINEN CALM JUTE RUG",
			Category:      "HALI",
			CategoryEN:    "RUGS",
			Price:         4899.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/hal%C4%B1.png",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/hal%C4%B1%202.png",
			ImageDetail2:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/hal%C4%B1%202.png",
			ImageDetail3:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/hal%C4%B1%202.png",
			Description:   "Linen Calm Jüt Halı, doğal lif dokusu ve yumuşak renk tonlarıyla yaşam alanlarında sade bir denge oluşturur. Zamansız tasarımı sayesinde salon, çalışma alanı ve yatak odalarında rahatlıkla kullanılabilir.",
			DescriptionEN: "Linen Calm Jute Rug creates a simple balance in living spaces with its natural fiber texture and soft color tones. Thanks to its timeless design, it can be easily used in the living room, workspace, and bedroom.",
			Features:      []string{"Malzeme: Jüt", "Dokuma: Düz dokuma", "Renk: Doğal krem tonları", "Stil: Minimal / Doğal", "Kullanım: İç mekân"},
			FeaturesEN:    []string{"Material: Jute", "Weave: Flat weave", "Color: Natural cream tones", "Style: Minimal / Natural", "Usage: Indoor"},
		},
		{
			ID:            2,
			Name:          "WABI EARTH KASE",
			NameEN:        "WABI EARTH BOWL",
			Category:      "DEKORATİF AKSESUAR",
			CategoryEN:    "DECORATION",
			Price:         2999.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/wabi%20earth%20kase.png",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/wabi%20sabi%20kase%202.JPG",
			ImageDetail2:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/wabi%20sabi%20kase%202.JPG",
			ImageDetail3:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/wabi%20sabi%20kase%202.JPG",
			Description:   "Wabi Earth Kase, kağıt hamuru kullanılarak elde şekillendirilmiş, ayaklı formuyla güçlü bir duruş sergiler. Doğal yüzey dokusu ve organik renk geçişleri, onu dekoratif bir sanat objesine dönüştürür.",
			DescriptionEN: "Wabi Earth Bowl displays a strong stance with its footed form shaped by hand using paper pulp. Natural surface texture and organic color transitions transform it into a decorative art object.",
			Features:      []string{"Malzeme: Kağıt hamuru", "Üretim: El yapımı", "Form: Ayaklı kase", "Stil: Wabi-sabi", "UYARI: Gıda ile temasa uygun değildir"},
			FeaturesEN:    []string{"Material: Paper pulp", "Production: Handmade", "Form: Footed bowl", "Style: Wabi-sabi", "WARNING: Not suitable for food contact"},
		},
		{
			ID:            3,
			Name:          "TERRA SILENCE SERAMİK VAZO SETİ (2’Lİ)",
			NameEN:        "TERRA SILENCE CERAMIC VASE SET (SET OF 2)",
			Category:      "DEKORATİF AKSESUAR",
			CategoryEN:    "DECORATION",
			Price:         2950.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/vazo%201.JPG",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/vazo%202.JPG",
			ImageDetail2:  "https://source.unsplash.com/400x550/?ceramic,vessel,styled",
			ImageDetail3:  "https://source.unsplash.com/400x550/?ceramic,matte,detail",
			Description:   "Terra Silence Vazo Seti taş tozu karışımıyla elde şekillendirilmiş, her biri benzersiz iki dekoratif vazodan oluşur. Yüzeydeki doğal geçişler ve kusurlu güzellik anlayışı, wabi-sabi felsefesini yansıtır.",
			DescriptionEN: "Terra Silence Vase Set consists of two unique decorative vases shaped by hand with stone powder mixture. Natural transitions on the surface and imperfect beauty concept reflect wabi-sabi philosophy.",
			Features:      []string{"Malzeme: Taş tozu", "Üretim: El yapımı", "Set İçeriği: 2 adet vazo", "Stil: Wabi-sabi / Organik", "UYARI: Su ile temas ettirilmemelidir"},
			FeaturesEN:    []string{"Material: Stone powder", "Production: Handmade", "Set Content: 2 vases", "Style: Wabi-sabi / Organic", "WARNING: Do not contact with water"},
		},
		{
			ID:            4,
			Name:          "PURE LINE UZUN BOY AYNA",
			NameEN:        "PURE LINE FLOOR MIRROR",
			Category:      "AYNA",
			CategoryEN:    "MIRRORS",
			Price:         2850.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/ayna.png",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/ayna%202.png",
			ImageDetail2:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/ayna%202.png",
			ImageDetail3:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/ayna%202.png",
			Description:   "Pure Line Uzun Boy Ayna, ince çerçevesi ve sade formuyla mekânı daha ferah ve aydınlık gösterir. Minimal tasarımı sayesinde farklı dekorasyon stilleriyle kolayca uyum sağlar.",
			DescriptionEN: "Pure Line Floor Mirror makes the space look more spacious and bright with its thin frame and simple form. Thanks to its minimal design, it easily adapts to different decoration styles.",
			Features:      []string{"Form: Uzun boy", "Stil: Minimal", "Kullanım: İç mekân", "Çerçeve: İnce metal"},
			FeaturesEN:    []string{"Form: Full length", "Style: Minimal", "Usage: Indoor", "Frame: Thin metal"},
		},
		{
			ID:            5,
			Name:          "NOIR CALM DOĞAL MUM",
			NameEN:        "NOIR CALM NATURAL CANDLE",
			Category:      "MUM VE ODA KOKUSU",
			CategoryEN:    "FRAGRANCES",
			Price:         599.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum%20main.png",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum.png",
			ImageDetail2:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum.png",
			ImageDetail3:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum.png",
			Description:   "Noir Calm Doğal Mum, sade tasarımı ve yumuşak aleviyle mekânda huzurlu bir atmosfer yaratır. Tek başına veya set ürünleriyle birlikte kullanılabilir.",
			DescriptionEN: "Noir Calm Natural Candle creates a peaceful atmosphere in the space with its simple design and soft flame. Can be used alone or with set products.",
			Features:      []string{"Kullanım: İç mekân", "Stil: Minimal", "Ambalaj: Mat siyah cam"},
			FeaturesEN:    []string{"Usage: Indoor", "Style: Minimal", "Packaging: Matte black glass"},
		},
		{
			ID:            6,
			Name:          "NOIR CALM MUM SETİ (3’LÜ)",
			NameEN:        "NOIR CALM CANDLE SET (SET OF 3)",
			Category:      "MUM VE ODA KOKUSU",
			CategoryEN:    "FRAGRANCES",
			Price:         749.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum%20seti.png",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum%20seti.png",
			ImageDetail2:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum%20seti.png",
			ImageDetail3:  "https://raw.githubusercontent.com/Aybukehso/petra-images/main/mum%20seti.png",
			Description:   "Noir Calm Mum Seti, farklı boyutlardaki üç parçadan oluşur. Birlikte kullanıldığında dengeli ve sofistike bir dekoratif görünüm sunar.",
			DescriptionEN: "Noir Calm Candle Set consists of three pieces in different sizes. When used together, it offers a balanced and sophisticated decorative look.",
			Features:      []string{"Set İçeriği: 3 adet mum", "Stil: Minimal", "Kullanım: Dekoratif & ambiyans"},
			FeaturesEN:    []string{"Set Content: 3 candles", "Style: Minimal", "Usage: Decorative & ambiance"},
		},
		{
			ID:            7,
			Name:          "STONE CURVE MASA LAMBASI",
			NameEN:        "STONE CURVE TABLE LAMP",
			Category:      "AYDINLATMA",
			CategoryEN:    "LIGHTING",
			Price:         7999.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/ayd%C4%B1nlatma.JPG",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/ayd%C4%B1nlatma%202.JPG",
			ImageDetail2:  "https://source.unsplash.com/400x550/?lamp,shade,detail",
			ImageDetail3:  "https://source.unsplash.com/400x550/?minimalist,lighting,styled",
			Description:   "Stone Curve Masa Lambası, heykelsi formu ve yumuşak ışık dağılımıyla mekâna sakin bir atmosfer kazandırır. Doğal dokusu ve kavisli yapısı, Japandi ve minimal interior stillerle kusursuz uyum sağlar.",
			DescriptionEN: "Stone Curve Table Lamp brings a calm atmosphere to the space with its sculptural form and soft light distribution. Its natural texture and curved structure blend perfectly with Japandi and minimal interior styles.",
			Features:      []string{"Malzeme: Taş dokulu gövde", "Işık Tipi: Sıcak beyaz", "Kullanım Alanı: İç mekân", "Stil: Minimal / Japandi", "Elektrik: Kablolu kullanım"},
			FeaturesEN:    []string{"Material: Stone textured body", "Light Type: Warm white", "Usage: Indoor", "Style: Minimal / Japandi", "Power: Corded"},
			PaymentLink:   "https://www.shopier.com/petrastudio/42261301",
		},
		{
			ID:            8,
			Name:          "WABI DARK KASE",
			NameEN:        "WABI DARK BOWL",
			Category:      "DEKORATİF AKSESUAR",
			CategoryEN:    "DECORATION",
			Price:         3449.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/kase%201.JPG",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/kase%202.JPG",
			ImageDetail2:  "https://source.unsplash.com/400x550/?plate,styled,minimal",
			ImageDetail3:  "https://source.unsplash.com/400x550/?white,seramic,detail",
			Description:   "Wabi Dark Kase, düzensiz kenarları ve koyu yüzeyiyle wabi-sabi estetiğini yansıtır. Minimal ama karakterli duruşu sayesinde tek başına veya farklı objelerle birlikte dekoratif olarak kullanılabilir.",
			DescriptionEN: "Wabi Dark Bowl reflects wabi-sabi aesthetics with its irregular edges and dark surface. With its minimal yet characteristic stance, it can be used decoratively alone or with other objects.",
			Features:      []string{"Malzeme: Kağıt Hamuru", "Yüzey: Parlak sır", "Çap: 28 cm", "Kullanım: Sadece dekoratif amaçlı"},
			FeaturesEN:    []string{"Material: Paper Pulp", "Surface: Glossy glaze", "Diameter: 28 cm", "Usage: Decorative purpose only"},
		},
		{
			ID:            9,
			Name:          "DOKULU DUVAR TABLOSU",
			NameEN:        "TEXTURED WALL ART",
			Category:      "TABLO",
			CategoryEN:    "ARTWORKS",
			Price:         7899.00,
			ImageMain:     "https://raw.githubusercontent.com/Aybukehso/petra-images/main/tablo%202.JPG",
			ImageHover:    "https://raw.githubusercontent.com/Aybukehso/petra-images/main/tablo%203.JPG",
			ImageDetail2:  "https://github.com/Aybukehso/petra-images/raw/main/tablo%202.JPG",
			ImageDetail3:  "https://github.com/Aybukehso/petra-images/raw/main/tablo%203.JPG",
			Description:   "Dokulu Duvar Tablosu, doğal malzeme hissi veren yüzeyi ve sakin renk paletiyle mekânda sanatsal bir denge oluşturur. Işıkla birlikte değişen dokusu, duvarlarda derinlik hissi yaratır.",
			DescriptionEN: "Textured Wall Art creates an artistic balance in the space with its surface giving a natural material feel and calm color palette. Its texture changing with light creates a sense of depth on the walls.",
			Features:      []string{"Stil: Dokulu / Sanatsal", "Kullanım: Duvara asılabilir", "Etki: Işıkla değişen yüzey dokusu", "Kullanım Alanı: İç mekân"},
			FeaturesEN:    []string{"Style: Textured / Artistic", "Usage: Wall mountable", "Effect: Surface texture changing with light", "Usage Area: Indoor"},
		},
	}
}

// builtinCategories returns the default category table used until the remote
// categories collection holds at least one record.
func builtinCategories() []domain.Category {
	return []domain.Category{
		{Key: "AYNA", NameEN: "MIRRORS"},
		{Key: "AYDINLATMA", NameEN: "LIGHTING"},
		{Key: "DEKORATİF AKSESUAR", NameEN: "DECORATION"},
		{Key: "TABLO", NameEN: "ARTWORKS"},
		{Key: "MUM VE ODA KOKUSU", NameEN: "FRAGRANCES"},
		{Key: "HALI", NameEN: "RUGS"},
	}
}
