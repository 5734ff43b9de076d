package constant

const EmailApiKeyTemplate = `
Dear %s,

Thank you for registering with the Event Ticket API. Your access request has been approved.

Your API key:
------------------------------------------
%s
------------------------------------------

Usage:
1. Pass the key on every request in the Authorization header: "Bearer <key>"
2. Keep this key private; anyone holding it can create orders on your behalf
3. The key does not expire

If you did not request this key, please contact our support team at support@event-ticket.com.

Best regards,
Event Ticket Team

Note: This is an automated message, please do not reply to this email.
`

const EmailTicketIssuedTemplate = `
Dear customer,

Your order has been confirmed and your ticket has been issued.

Order Details:
------------------------------------------
Order Number: %s
Event: %s
Ticket Type: %s
Total Amount: %s
------------------------------------------

Download your tickets: %s

Please present the downloaded ticket at the venue entrance.

If you have any questions, please contact our support team at support@event-ticket.com.

Best regards,
Event Ticket Team

Note: This is an automated message, please do not reply to this email.
`
