package model

import "time"

// LogoURL is the storefront logo shown by clients
const LogoURL = "https://springgreen-leopard-502388.hostingersite.com/wp-content/uploads/2021/06/Untitled-1.png"

// DefaultState returns the seed AppState used when no document has been
// persisted yet, and as the backfill source when an older document is missing
// newer top-level collections.
func DefaultState() *AppState {
	return &AppState{
		Categories: []Category{
			{ID: "1", Name: "عناية وجمال", Image: "https://picsum.photos/seed/care/400/400"},
			{ID: "2", Name: "أجهزة رياضة ومساج", Image: "https://picsum.photos/seed/sport/400/400"},
			{ID: "3", Name: "أجهزة كهربائية للمطبخ", Image: "https://picsum.photos/seed/kitchen/400/400"},
			{ID: "4", Name: "أجهزة كهربائية للمنزل", Image: "https://picsum.photos/seed/home/400/400"},
			{ID: "5", Name: "ماكينات قهوة", Image: "https://picsum.photos/seed/coffee/400/400"},
		},
		Brands: []Brand{
			{ID: "b1", Name: "ARISTON", Logo: "https://seeklogo.com/images/A/ariston-logo-C79F3795A4-seeklogo.com.png", Image: "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?auto=format&fit=crop&q=80&w=800"},
			{ID: "b2", Name: "CONTI", Logo: "https://springgreen-leopard-502388.hostingersite.com/wp-content/uploads/2021/06/conti.png", Image: "https://images.unsplash.com/photo-1556910103-1c02745aae4d?auto=format&fit=crop&q=80&w=800"},
			{ID: "b3", Name: "PHILIPS", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/5/51/Philips_logo_new.svg/1280px-Philips_logo_new.svg.png", Image: "https://images.unsplash.com/photo-1626074353765-517a681e40be?auto=format&fit=crop&q=80&w=800"},
			{ID: "b4", Name: "HISENSE", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/8e/Hisense_logo.svg/1280px-Hisense_logo.svg.png", Image: "https://images.unsplash.com/photo-1583947215259-38e31be8751f?auto=format&fit=crop&q=80&w=800"},
			{ID: "b5", Name: "OPERA", Logo: "https://springgreen-leopard-502388.hostingersite.com/wp-content/uploads/2021/06/opera.png", Image: "https://images.unsplash.com/photo-1590794056226-77ee3d416075?auto=format&fit=crop&q=80&w=800"},
			{ID: "b6", Name: "VESTEL", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/91/Vestel_logo.svg/1280px-Vestel_logo.svg.png", Image: "https://images.unsplash.com/photo-1571175432248-356073167195?auto=format&fit=crop&q=80&w=800"},
			{ID: "b7", Name: "LA GERMANIA", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/3/36/La_Germania_logo.svg/1280px-La_Germania_logo.svg.png", Image: "https://images.unsplash.com/photo-1599619351208-3e6c839d7824?auto=format&fit=crop&q=80&w=800"},
		},
		Products: []Product{
			{ID: "p1", Name: "محضرة طعام احترافية", Price: 120, Category: "أجهزة كهربائية للمطبخ", Image: "https://picsum.photos/seed/p1/500/500", Description: "خلاط ومحضرة طعام متعددة الوظائف بقوة 1000 واط."},
			{ID: "p2", Name: "ماكينة إسبريسو", Price: 85, Category: "ماكينات قهوة", Image: "https://picsum.photos/seed/p2/500/500", Description: "ماكينة قهوة إيطالية لتحضير أفضل أنواع الإسبريسو."},
			{ID: "p3", Name: "مكواة بخار تيفال", Price: 45, Category: "أجهزة كهربائية للمنزل", Image: "https://picsum.photos/seed/p3/500/500", Description: "مكواة بخار قوية وسهلة الاستخدام."},
			{ID: "p4", Name: "جهاز مساج الرقبة", Price: 30, Category: "أجهزة رياضة ومساج", Image: "https://picsum.photos/seed/p4/500/500", Description: "مساج مريح للرقبة والأكتاف مع خاصية التسخين."},
		},
		HeroSlides: []HeroSlide{
			{
				ID:         "h1",
				Image:      "https://picsum.photos/seed/hero1/1600/600",
				Title:      "المتجر الأول في الأردن",
				Subtitle:   "المرخص والمعتمد لدى الوكالات الكهربائية",
				ButtonText: "تسوق الآن",
			},
			{
				ID:         "h2",
				Image:      "https://picsum.photos/seed/hero2/1600/600",
				Title:      "عروض خاصة لفترة محدودة",
				Subtitle:   "خصومات تصل إلى 50% على الأجهزة المنزلية",
				ButtonText: "شاهد العروض",
			},
		},
		Ads: []Ad{
			{ID: "ad1", Image: "https://springgreen-leopard-502388.hostingersite.com/wp-content/uploads/2024/08/toys_slider_desk_ar-1920x290-1.jpg"},
		},
		SpecialOffers: []SpecialOffer{},
		Orders:        []Order{},
		HelpSections: []HelpSection{
			{ID: "help-guide", Title: "دليل المساعدة", Content: "كل ما تحتاج معرفته عن استخدام المتجر."},
			{ID: "help-center", Title: "مركز المساعدة", Content: "فريق الدعم جاهز للإجابة على استفساراتك."},
			{ID: "how-to-buy", Title: "كيف أشتري؟", Content: "أضف المنتجات إلى السلة ثم أرسل طلبك عبر واتساب."},
			{ID: "shipping", Title: "الشحن والتسليم", Content: "التوصيل متاح لجميع مناطق المملكة."},
			{ID: "product-policy", Title: "سياسة المنتج", Content: "جميع المنتجات أصلية ومكفولة من الوكيل."},
			{ID: "returns", Title: "كيفية العودة", Content: "يمكن إرجاع المنتج خلال 14 يوماً من الاستلام."},
		},
	}
}

// NewEntityID generates a random id for a newly created record. Entropy is
// sufficient for a single-tenant admin tool, not collision-proof at scale.
func NewEntityID() string {
	return shortID()
}

// DefaultOfferDuration is how far in the future a newly created special
// offer ends.
const DefaultOfferDuration = 24 * time.Hour
