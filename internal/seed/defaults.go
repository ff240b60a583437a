// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"ngocms/internal/models"
	"ngocms/internal/store"
)

// Canonical page ids.
const (
	PageHome        = "home"
	PageAbout       = "about"
	PagePrograms    = "programs"
	PageNews        = "news"
	PageResources   = "resources"
	PageContact     = "contact"
	PageGetInvolved = "get-involved"
)

// HomeSectionOrder is the display order of the home page sections.
var HomeSectionOrder = []string{"hero", "mission", "programs", "stats", "news", "partners", "cta"}

func sec(id string, title, content models.Text) models.Section {
	return models.Section{ID: id, Title: title, Content: content}
}

func secImg(id string, title, content models.Text, image string) models.Section {
	s := sec(id, title, content)
	s.Image = image
	return s
}

// Canonical returns the expected sections of every known page. A fresh
// map is built on each call so callers may modify it.
func Canonical() map[string]store.PageDefaults {
	return map[string]store.PageDefaults{
		PageHome: {
			Title: models.T("Accueil", "الرئيسية"),
			Sections: []models.Section{
				secImg("hero",
					models.T("Défendre la dignité et les droits de chacun", "الدفاع عن كرامة وحقوق الجميع"),
					models.T("Nous œuvrons pour la promotion et la protection des droits humains.", "نعمل من أجل تعزيز وحماية حقوق الإنسان."),
					"/images/hero.jpg"),
				sec("mission",
					models.T("Notre mission", "مهمتنا"),
					models.T("Accompagner les victimes, sensibiliser le public et plaider pour des politiques justes.", "مرافقة الضحايا وتوعية الجمهور والمناصرة من أجل سياسات عادلة.")),
				sec("programs",
					models.T("Nos programmes", "برامجنا"),
					models.T("Assistance juridique, éducation aux droits et plaidoyer.", "المساعدة القانونية والتربية على الحقوق والمناصرة.")),
				sec("stats",
					models.T("Notre impact", "أثرنا"),
					models.T("Plus de 5 000 personnes accompagnées depuis notre création.", "أكثر من 5000 شخص تمت مرافقتهم منذ تأسيسنا.")),
				sec("news",
					models.T("Actualités", "الأخبار"),
					models.T("Les dernières nouvelles de l'association.", "آخر أخبار الجمعية.")),
				sec("partners",
					models.T("Nos partenaires", "شركاؤنا"),
					models.T("Ils nous font confiance et soutiennent notre action.", "يثقون بنا ويدعمون عملنا.")),
				sec("cta",
					models.T("Rejoignez-nous", "انضموا إلينا"),
					models.T("Devenez bénévole, membre ou donateur.", "كونوا متطوعين أو أعضاء أو مانحين.")),
			},
		},
		PageAbout: {
			Title: models.T("À propos", "من نحن"),
			Sections: []models.Section{
				sec("intro",
					models.T("Qui sommes-nous ?", "من نحن؟"),
					models.T("Une association indépendante de défense des droits humains.", "جمعية مستقلة للدفاع عن حقوق الإنسان.")),
				sec("history",
					models.T("Notre histoire", "تاريخنا"),
					models.T("Fondée par des militants engagés, l'association agit depuis plus de dix ans.", "تأسست الجمعية على يد نشطاء ملتزمين وتعمل منذ أكثر من عشر سنوات.")),
				sec("values",
					models.T("Nos valeurs", "قيمنا"),
					models.T("Indépendance, égalité, solidarité et transparence.", "الاستقلالية والمساواة والتضامن والشفافية.")),
				sec("team",
					models.T("Notre équipe", "فريقنا"),
					models.T("Juristes, travailleurs sociaux et bénévoles.", "حقوقيون وعاملون اجتماعيون ومتطوعون.")),
			},
		},
		PagePrograms: {
			Title: models.T("Programmes", "البرامج"),
			Sections: []models.Section{
				sec("overview",
					models.T("Nos domaines d'action", "مجالات عملنا"),
					models.T("Trois programmes complémentaires au service des droits.", "ثلاثة برامج متكاملة في خدمة الحقوق.")),
				sec("legal-aid",
					models.T("Assistance juridique", "المساعدة القانونية"),
					models.T("Conseil et accompagnement gratuits des victimes.", "استشارة ومرافقة مجانية للضحايا.")),
				sec("education",
					models.T("Éducation aux droits", "التربية على الحقوق"),
					models.T("Ateliers et formations dans les écoles et les quartiers.", "ورشات وتكوينات في المدارس والأحياء.")),
				sec("advocacy",
					models.T("Plaidoyer", "المناصرة"),
					models.T("Dialogue avec les institutions pour faire évoluer les lois.", "الحوار مع المؤسسات من أجل تطوير القوانين.")),
			},
		},
		PageNews: {
			Title: models.T("Actualités", "الأخبار"),
			Sections: []models.Section{
				sec("header",
					models.T("Actualités", "الأخبار"),
					models.T("Suivez nos activités et nos prises de position.", "تابعوا أنشطتنا ومواقفنا.")),
				sec("newsletter",
					models.T("Lettre d'information", "النشرة الإخبارية"),
					models.T("Recevez nos nouvelles chaque mois.", "توصلوا بأخبارنا كل شهر.")),
			},
		},
		PageResources: {
			Title: models.T("Ressources", "الموارد"),
			Sections: []models.Section{
				sec("header",
					models.T("Centre de ressources", "مركز الموارد"),
					models.T("Rapports, guides et publications à télécharger.", "تقارير وأدلة ومنشورات للتحميل.")),
				sec("publications",
					models.T("Publications", "المنشورات"),
					models.T("Nos rapports annuels et études thématiques.", "تقاريرنا السنوية ودراساتنا الموضوعاتية.")),
			},
		},
		PageContact: {
			Title: models.T("Contact", "اتصل بنا"),
			Sections: []models.Section{
				sec("header",
					models.T("Contactez-nous", "اتصلوا بنا"),
					models.T("Notre équipe vous répond du lundi au vendredi.", "فريقنا يجيبكم من الاثنين إلى الجمعة.")),
				sec("address",
					models.T("Adresse", "العنوان"),
					models.T("12 rue des Libertés, Tunis", "12 نهج الحريات، تونس")),
				sec("form",
					models.T("Écrivez-nous", "راسلونا"),
					models.T("Utilisez le formulaire ci-dessous.", "استعملوا الاستمارة أدناه.")),
			},
		},
		PageGetInvolved: {
			Title: models.T("Agir avec nous", "شاركوا معنا"),
			Sections: []models.Section{
				sec("volunteer",
					models.T("Devenir bénévole", "كن متطوعا"),
					models.T("Donnez de votre temps pour une cause juste.", "امنح من وقتك لقضية عادلة.")),
				sec("membership",
					models.T("Adhérer", "الانخراط"),
					models.T("Rejoignez l'association en tant que membre.", "انضم إلى الجمعية كعضو.")),
				sec("donate",
					models.T("Faire un don", "تبرع"),
					models.T("Votre soutien finance nos actions sur le terrain.", "دعمكم يمول أنشطتنا الميدانية.")),
			},
		},
	}
}

// DefaultPages builds the live copy of every canonical page, home first.
func DefaultPages() []models.Page {
	canon := Canonical()
	order := []string{PageHome, PageAbout, PagePrograms, PageNews, PageResources, PageContact, PageGetInvolved}
	pages := make([]models.Page, 0, len(order))
	for _, id := range order {
		def := canon[id]
		p := models.Page{ID: id, Title: def.Title, Sections: make([]models.Section, 0, len(def.Sections))}
		for _, s := range def.Sections {
			p.Sections = append(p.Sections, s.Clone())
		}
		pages = append(pages, p)
	}
	return pages
}

// DefaultNews returns the sample news items.
func DefaultNews() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:       "1",
			Title:    models.T("Lancement de la campagne annuelle", "إطلاق الحملة السنوية"),
			Excerpt:  models.T("Notre campagne de sensibilisation démarre ce mois-ci.", "تنطلق حملتنا التحسيسية هذا الشهر."),
			Content:  models.T("La campagne **annuelle** met l'accent sur l'accès à la justice.", "تركز الحملة **السنوية** على الولوج إلى العدالة."),
			Category: models.T("Campagnes", "حملات"),
			Slug:     models.T("lancement-de-la-campagne-annuelle", "اطلاق-الحملة-السنوية"),
			Date:     "2024-03-15",
			Author:   "Équipe communication",
			Image:    "/images/news/campaign.jpg",
			Tags:     []string{"campagne", "justice"},
		},
		{
			ID:       "2",
			Title:    models.T("Publication du rapport annuel", "نشر التقرير السنوي"),
			Excerpt:  models.T("Le rapport annuel dresse le bilan de nos actions.", "يقدم التقرير السنوي حصيلة أنشطتنا."),
			Content:  models.T("Le rapport est disponible dans le centre de ressources.", "التقرير متوفر في مركز الموارد."),
			Category: models.T("Publications", "منشورات"),
			Slug:     models.T("publication-du-rapport-annuel", "نشر-التقرير-السنوي"),
			Date:     "2024-02-01",
			Author:   "Secrétariat général",
			Image:    "/images/news/report.jpg",
			Tags:     []string{"rapport"},
		},
	}
}

// DefaultResources returns the sample resources.
func DefaultResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "annual-report-2023",
			Title:       models.T("Rapport annuel 2023", "التقرير السنوي 2023"),
			Description: models.T("Bilan de nos activités en 2023.", "حصيلة أنشطتنا لسنة 2023."),
			Type:        "report",
			Format:      "PDF",
			Date:        models.T("Janvier 2024", "يناير 2024"),
			DownloadURL: "/files/rapport-2023.pdf",
			Thumbnail:   "/images/resources/report-2023.jpg",
		},
		{
			ID:          "rights-guide",
			Title:       models.T("Guide des droits fondamentaux", "دليل الحقوق الأساسية"),
			Description: models.T("Un guide pratique pour connaître ses droits.", "دليل عملي للتعرف على الحقوق."),
			Type:        "guide",
			Format:      "PDF",
			Date:        models.T("Juin 2023", "يونيو 2023"),
			DownloadURL: "/files/guide-droits.pdf",
			Thumbnail:   "/images/resources/guide.jpg",
		},
	}
}

// DefaultGlobalContent returns the shared site strings.
func DefaultGlobalContent() []models.GlobalContent {
	return []models.GlobalContent{
		{ID: "site-name", Category: "site", Key: "name", Text: models.T("Association pour les Droits Humains", "جمعية حقوق الإنسان"), Image: "/images/logo.png"},
		{ID: "site-tagline", Category: "site", Key: "tagline", Text: models.T("Dignité, justice, égalité", "كرامة، عدالة، مساواة")},
		{ID: "contact-email", Category: "contact", Key: "email", Text: models.T("contact@association.org", "contact@association.org")},
		{ID: "contact-phone", Category: "contact", Key: "phone", Text: models.T("+216 71 000 000", "+216 71 000 000")},
		{ID: "cta-donate", Category: "buttons", Key: "donate", Text: models.T("Faire un don", "تبرع")},
		{ID: "cta-read-more", Category: "buttons", Key: "read_more", Text: models.T("Lire la suite", "اقرأ المزيد")},
	}
}

// DefaultStructure returns the default navigation.
func DefaultStructure() models.WebsiteStructure {
	about := models.T("Une association indépendante de défense des droits humains.", "جمعية مستقلة للدفاع عن حقوق الإنسان.")
	return models.WebsiteStructure{
		MainMenu: []models.MenuItem{
			{ID: "home", Title: models.T("Accueil", "الرئيسية"), Href: "/"},
			{ID: "about", Title: models.T("À propos", "من نحن"), Href: "/about"},
			{ID: "programs", Title: models.T("Programmes", "البرامج"), Href: "/programs"},
			{ID: "news", Title: models.T("Actualités", "الأخبار"), Href: "/news"},
			{ID: "resources", Title: models.T("Ressources", "الموارد"), Href: "/resources"},
			{ID: "contact", Title: models.T("Contact", "اتصل بنا"), Href: "/contact"},
		},
		Footer: []models.FooterSection{
			{ID: "about", Title: models.T("L'association", "الجمعية"), Content: &about},
			{
				ID:    "links",
				Title: models.T("Liens utiles", "روابط مفيدة"),
				Links: []models.FooterLink{
					{ID: "get-involved", Title: models.T("Agir avec nous", "شاركوا معنا"), Href: "/get-involved"},
					{ID: "resources", Title: models.T("Ressources", "الموارد"), Href: "/resources"},
					{ID: "contact", Title: models.T("Contact", "اتصل بنا"), Href: "/contact"},
				},
			},
		},
	}
}
