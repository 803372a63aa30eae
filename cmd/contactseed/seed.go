package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"addressbook/contact"
	"addressbook/errs"
	"addressbook/pkg/sentry"
)

func sampleContacts() []contact.Payload {
	rows := [][4]string{
		{"Juan", "Pérez", "+54 11 1234-5678", "juan.perez@email.com"},
		{"María", "González", "+54 11 2345-6789", "maria.gonzalez@email.com"},
		{"Carlos", "López", "+54 11 3456-7890", "carlos.lopez@email.com"},
		{"Ana", "Martínez", "+54 11 4567-8901", "ana.martinez@email.com"},
		{"Luis", "Rodríguez", "+54 11 5678-9012", "luis.rodriguez@email.com"},
	}

	payloads := make([]contact.Payload, len(rows))
	for i, r := range rows {
		payloads[i] = newPayload(r[0], r[1], r[2], r[3])
	}
	return payloads
}

func newPayload(firstName, lastName, phone, email string) contact.Payload {
	return contact.Payload{
		FirstName: &firstName,
		LastName:  &lastName,
		Phone:     &phone,
		Email:     &email,
	}
}

// seedContacts inserts payloads through the service only when the address book is empty.
// Rows rejected by validation or as duplicates are skipped.
func seedContacts(ctx context.Context, svc contact.Service, payloads []contact.Payload) (int, error) {
	existing, err := svc.ListContacts(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		slog.Info("contacts table is not empty, skipping seed", "existing", len(existing))
		return 0, nil
	}

	count := 0
	for i, p := range payloads {
		if _, err := svc.AddContact(ctx, p); err != nil {
			switch errs.ErrorCode(err) {
			case errs.EINVALID, errs.ECONFLICT:
				slog.Warn("skipping contact", "row", i+1, "reason", errs.ErrorMessage(err), "fields", errs.ErrorFields(err))
				sentry.WithExtras(map[string]interface{}{
					"row":    i + 1,
					"code":   errs.ErrorCode(err),
					"fields": errs.ErrorFields(err),
				}).Warning("skipping contact: " + errs.ErrorMessage(err))
				continue
			}
			return count, err
		}
		count++
	}
	return count, nil
}

func readContactsCSV(r io.Reader) ([]contact.Payload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := map[contact.Field]int{}
	for i, name := range header {
		switch f := contact.Field(strings.TrimSpace(name)); f {
		case contact.FieldFirstName, contact.FieldLastName, contact.FieldPhone, contact.FieldEmail:
			idx[f] = i
		}
	}
	if len(idx) != 4 {
		return nil, errors.New("missing required columns in csv header")
	}

	var payloads []contact.Payload
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return payloads, err
		}

		value := func(f contact.Field) string {
			if idx[f] >= len(record) {
				return ""
			}
			return record[idx[f]]
		}
		payloads = append(payloads, newPayload(
			value(contact.FieldFirstName),
			value(contact.FieldLastName),
			value(contact.FieldPhone),
			value(contact.FieldEmail),
		))
	}
	return payloads, nil
}
