package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// notificationTemplate is the HTML body of the new-lead email sent to the
// business address.
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Nouvelle demande de contact</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #FF9502 0%, #FFA310 100%); padding: 20px; border-radius: 10px 10px 0 0;">
        <h1 style="color: white; margin: 0; font-size: 24px;">Nouvelle Demande de Contact</h1>
    </div>

    <div style="background: #f9f9f9; padding: 20px; border-radius: 0 0 10px 10px;">
        <h2 style="color: #FF9502; font-size: 18px; margin-top: 0;">Informations du client</h2>

        <table style="width: 100%; border-collapse: collapse;">
            <tr>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee; font-weight: bold; width: 140px;">Nom:</td>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee;">{{.Name}}</td>
            </tr>
            <tr>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee; font-weight: bold;">Email:</td>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee;"><a href="mailto:{{.Email}}" style="color: #FF9502;">{{.Email}}</a></td>
            </tr>
            <tr>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee; font-weight: bold;">Téléphone:</td>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee;"><a href="tel:{{.Phone}}" style="color: #FF9502;">{{.Phone}}</a></td>
            </tr>
            <tr>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee; font-weight: bold;">Service:</td>
                <td style="padding: 10px 0; border-bottom: 1px solid #eee;">{{.ServiceLabel}}</td>
            </tr>
        </table>

        <h2 style="color: #FF9502; font-size: 18px; margin-top: 20px;">Message</h2>
        <div style="background: white; padding: 15px; border-radius: 8px; border-left: 4px solid #FF9502;">
            {{.Message}}
        </div>
    </div>

    <p style="text-align: center; color: #999; font-size: 12px; margin-top: 20px;">
        Ce message a été envoyé depuis le formulaire de contact du site web ELECTRIC SYSTEM.
    </p>
</body>
</html>`

// confirmationTemplate is the HTML body of the receipt email sent back to
// the submitter.
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Confirmation de votre demande</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #FF9502 0%, #FFA310 100%); padding: 20px; border-radius: 10px 10px 0 0;">
        <h1 style="color: white; margin: 0; font-size: 24px;">ELECTRIC SYSTEM</h1>
    </div>

    <div style="background: #f9f9f9; padding: 20px; border-radius: 0 0 10px 10px;">
        <p>Bonjour {{.Name}},</p>

        <p>Nous avons bien reçu votre demande concernant: <strong>{{.ServiceLabel}}</strong></p>

        <p>Notre équipe vous recontactera dans les plus brefs délais pour discuter de votre projet.</p>

        <div style="background: white; padding: 15px; border-radius: 8px; margin: 20px 0;">
            <h3 style="color: #FF9502; margin-top: 0;">Récapitulatif de votre message:</h3>
            <p style="color: #666;">{{.Message}}</p>
        </div>

        <p>En attendant, n&apos;hésitez pas à nous contacter directement:</p>
        <ul style="list-style: none; padding: 0;">
            <li style="padding: 5px 0;">📞 <a href="tel:+352661224409" style="color: #FF9502;">+352 661 22 44 09</a></li>
            <li style="padding: 5px 0;">📧 <a href="mailto:info@electric-system.lu" style="color: #FF9502;">info@electric-system.lu</a></li>
        </ul>

        <p>Cordialement,<br><strong>L&apos;équipe ELECTRIC SYSTEM</strong></p>
    </div>

    <div style="text-align: center; margin-top: 20px; padding-top: 20px; border-top: 1px solid #eee;">
        <p style="color: #999; font-size: 12px;">
            ELECTRIC SYSTEM Sàrl<br>
            177 Rue de Luxembourg, L-8077 Bertrange<br>
            RCS Luxembourg B294234 | TVA: LU36415556
        </p>
    </div>
</body>
</html>`

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
)

// RenderNotification produces the business notification body. Pure function
// over already-sanitized data, so it is testable without a provider.
func RenderNotification(data SubmissionData) (string, error) {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute notification template: %w", err)
	}
	return body.String(), nil
}

// RenderConfirmation produces the customer confirmation body.
func RenderConfirmation(data SubmissionData) (string, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute confirmation template: %w", err)
	}
	return body.String(), nil
}
