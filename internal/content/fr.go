// Package content holds the static French copy of the marketing site.
// The site is single-locale; the frontend fetches this document once and
// renders every section from it.
package content

import "electric-system-backend/internal/domain"

// Site returns the full site copy.
func Site() *domain.SiteContent {
	return &fr
}

var fr = domain.SiteContent{
	Meta: domain.Meta{
		Title:       "ELECTRIC SYSTEM Sàrl | Électricien Professionnel Luxembourg",
		Description: "Services électriques professionnels au Luxembourg: installation photovoltaïque, bornes de recharge, domotique, sécurité. Devis gratuit à Bertrange et environs.",
	},

	Company: domain.Company{
		Name:         "ELECTRIC SYSTEM Sàrl",
		Address:      "177 Rue de Luxembourg",
		City:         "L-8077 Bertrange",
		Country:      "Luxembourg",
		Phone:        "+352 661 22 44 09",
		Email:        "info@electric-system.lu",
		Hours:        "Lundi - Vendredi: 8h00 - 17h00",
		Registration: "RCS Luxembourg B294234",
		VAT:          "TVA: LU36415556",
		Capital:      "30 000 EUR",
	},

	Nav: domain.Nav{
		Home:     "Accueil",
		Services: "Services",
		About:    "À Propos",
		Contact:  "Contact",
		CTA:      "Demander un Devis",
	},

	Hero: domain.Hero{
		Title:    "Votre Partenaire Électricien de Confiance au Luxembourg",
		Subtitle: "Solutions électriques professionnelles pour particuliers et entreprises. De l'installation photovoltaïque à la domotique, nous réalisons vos projets avec expertise et fiabilité.",
		CTA: domain.HeroCTA{
			Primary:   "Découvrir Nos Services",
			Secondary: "Nous Contacter",
		},
		Trust: []domain.TrustBadge{
			{Label: "Expertise Confirmée", Icon: "Award"},
			{Label: "Agréé et Certifié", Icon: "Shield"},
			{Label: "Devis Gratuit", Icon: "FileCheck"},
		},
	},

	Services: domain.ServicesSection{
		Title:    "Nos Services",
		Subtitle: "Des solutions électriques complètes pour tous vos besoins",
		Items: []domain.ServiceItem{
			{
				ID:          "photovoltaique",
				Title:       "Installation Photovoltaïque",
				Description: "Produisez votre propre électricité avec nos panneaux solaires performants. Installation professionnelle et accompagnement pour les aides gouvernementales.",
				Icon:        "Sun",
			},
			{
				ID:          "borne-recharge",
				Title:       "Bornes de Recharge",
				Description: "Installation de bornes de recharge pour véhicules électriques. Solutions adaptées pour particuliers, entreprises et copropriétés.",
				Icon:        "Zap",
			},
			{
				ID:          "electricite-generale",
				Title:       "Électricité Générale",
				Description: "Tableaux électriques, circuits, câblage complet. Installation, rénovation et mise aux normes de vos installations électriques.",
				Icon:        "Wrench",
			},
			{
				ID:          "domotique",
				Title:       "Domotique",
				Description: "Automatisation de votre maison: éclairage intelligent, volets automatiques, contrôle centralisé pour plus de confort et d'économies.",
				Icon:        "Home",
			},
			{
				ID:          "securite",
				Title:       "Sécurité",
				Description: "Protection complète de vos biens: alarmes, vidéosurveillance CCTV, contrôle d'accès. Sécurisez votre domicile ou entreprise.",
				Icon:        "ShieldCheck",
			},
			{
				ID:          "informatique",
				Title:       "Infrastructure Informatique",
				Description: "Câblage réseau structuré, installation de baies informatiques, connexions fibre optique pour une infrastructure performante.",
				Icon:        "Network",
			},
		},
	},

	About: domain.AboutSection{
		Title:    "À Propos d'ELECTRIC SYSTEM",
		Subtitle: "Votre électricien de confiance au Luxembourg",
		Content: []string{
			"ELECTRIC SYSTEM Sàrl est votre partenaire de confiance pour tous vos travaux électriques au Luxembourg. Basée à Bertrange, notre entreprise met son expertise au service des particuliers et des professionnels.",
			"Notre équipe de techniciens qualifiés intervient sur tout type de projet, de la simple installation électrique aux systèmes domotiques les plus avancés. Nous nous engageons à fournir un travail de qualité, dans le respect des normes en vigueur et des délais convenus.",
		},
		Values: []domain.CompanyValue{
			{Title: "Qualité", Description: "Travail soigné et matériaux de premier choix", Icon: "Star"},
			{Title: "Fiabilité", Description: "Respect des délais et des engagements", Icon: "Clock"},
			{Title: "Expertise", Description: "Équipe qualifiée et formée en continu", Icon: "GraduationCap"},
			{Title: "Service", Description: "Conseil personnalisé et suivi client", Icon: "HeartHandshake"},
		},
	},

	Testimonials: domain.Testimonials{
		Title:    "Ce Que Disent Nos Clients",
		Subtitle: "La satisfaction de nos clients est notre priorité",
		Items: []domain.Testimonial{
			{
				Name:     "Jean-Pierre M.",
				Location: "Luxembourg-Ville",
				Rating:   5,
				Text:     "Excellente installation photovoltaïque. L'équipe a été très professionnelle et réactive. Le chantier a été livré dans les temps et proprement. Je recommande vivement ELECTRIC SYSTEM!",
			},
			{
				Name:     "Marie L.",
				Location: "Bertrange",
				Rating:   5,
				Text:     "Installation de notre borne de recharge effectuée rapidement et proprement. Le technicien nous a bien conseillé sur le choix du matériel adapté à notre véhicule. Très satisfaite du service.",
			},
			{
				Name:     "Pierre D.",
				Location: "Strassen",
				Rating:   5,
				Text:     "Rénovation électrique complète de notre maison. Travail impeccable, équipe à l'écoute et très professionnelle. Les conseils en domotique nous ont permis de faire des économies d'énergie.",
			},
		},
	},

	Contact: domain.ContactSection{
		Title:    "Contactez-Nous",
		Subtitle: "Demandez votre devis gratuit et sans engagement",
		Form: domain.ContactForm{
			Name:  domain.FormField{Label: "Nom complet", Placeholder: "Votre nom"},
			Email: domain.FormField{Label: "Adresse email", Placeholder: "votre@email.com"},
			Phone: domain.FormField{Label: "Téléphone", Placeholder: "+352 XXX XXX XXX"},
			Service: domain.ServiceField{
				Label:       "Service intéressé",
				Placeholder: "Sélectionnez un service",
				Options: []domain.ServiceOption{
					{Value: "photovoltaique", Label: "Installation Photovoltaïque"},
					{Value: "borne-recharge", Label: "Bornes de Recharge VE"},
					{Value: "electricite-generale", Label: "Électricité Générale"},
					{Value: "domotique", Label: "Domotique"},
					{Value: "securite", Label: "Sécurité"},
					{Value: "informatique", Label: "Infrastructure Informatique"},
					{Value: "autre", Label: "Autre"},
				},
			},
			Message:    domain.FormField{Label: "Votre message", Placeholder: "Décrivez votre projet ou votre demande..."},
			Submit:     "Envoyer ma demande",
			Submitting: "Envoi en cours...",
			Success:    "Merci! Votre message a été envoyé avec succès. Nous vous recontacterons dans les plus brefs délais.",
			Error:      "Une erreur est survenue lors de l'envoi. Veuillez réessayer ou nous contacter directement par téléphone.",
		},
		Info: domain.ContactInfo{
			Title:   "Informations de Contact",
			Address: domain.ContactDetail{Label: "Adresse", Icon: "MapPin"},
			Phone:   domain.ContactDetail{Label: "Téléphone", Icon: "Phone"},
			Email:   domain.ContactDetail{Label: "Email", Icon: "Mail"},
			Hours:   domain.ContactDetail{Label: "Horaires", Icon: "Clock"},
		},
	},

	Footer: domain.Footer{
		Description: "ELECTRIC SYSTEM Sàrl - Votre électricien de confiance au Luxembourg. Installation photovoltaïque, bornes de recharge, domotique et sécurité.",
		Sections: domain.FooterSections{
			Services: domain.FooterSection{
				Title: "Nos Services",
				Links: []domain.FooterLink{
					{Label: "Installation Photovoltaïque", Href: "#services"},
					{Label: "Bornes de Recharge", Href: "#services"},
					{Label: "Électricité Générale", Href: "#services"},
					{Label: "Domotique", Href: "#services"},
					{Label: "Sécurité", Href: "#services"},
				},
			},
			Company: domain.FooterSection{
				Title: "Entreprise",
				Links: []domain.FooterLink{
					{Label: "À Propos", Href: "#about"},
					{Label: "Nos Réalisations", Href: "#testimonials"},
					{Label: "Contact", Href: "#contact"},
				},
			},
			Legal: domain.FooterSection{
				Title: "Informations Légales",
			},
		},
		Copyright: "ELECTRIC SYSTEM Sàrl. Tous droits réservés.",
	},
}
