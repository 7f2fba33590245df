package encounters

import (
	"audicare-service/internal/pkg/canonical"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/formstate"
)

// sectionSchemas declares the canonical shape of every known section field.
// Incoming values are normalized against these shapes before they enter form
// state, so the same answer always lands in the same encoding regardless of
// which client produced it. Unknown fields pass through untouched.
var sectionSchemas = map[string]map[string]canonical.FieldShape{
	constvars.SectionRegistration: {
		"firstName":   {Kind: canonical.ShapeString},
		"lastName":    {Kind: canonical.ShapeString},
		"dateOfBirth": {Kind: canonical.ShapeDate},
		"gender":      {Kind: canonical.ShapeCategory, Options: []string{"Male", "Female", "Other"}},
		"phoneNumber": {Kind: canonical.ShapeString},
		"clinicRef":   {Kind: canonical.ShapeString},
		"consentGiven": {
			Kind: canonical.ShapeBool,
		},
		"referralSource": {
			Kind:    canonical.ShapeCategory,
			Options: []string{"Community Visit", "Walk In", "Referral", "Outreach Camp"},
		},
	},
	constvars.SectionEarScreening: {
		"leftEarCanal":  {Kind: canonical.ShapeCategory, Options: []string{"Clear", "Partially Occluded", "Fully Occluded"}},
		"rightEarCanal": {Kind: canonical.ShapeCategory, Options: []string{"Clear", "Partially Occluded", "Fully Occluded"}},
		"earConditions": {Kind: canonical.ShapeList},
		"otoscopyNotes": {Kind: canonical.ShapeString},
		"screeningDate": {Kind: canonical.ShapeDate},
	},
	constvars.SectionHearingScreening: {
		"leftEarThresholdDb":  {Kind: canonical.ShapeNumber},
		"rightEarThresholdDb": {Kind: canonical.ShapeNumber},
		"responseReliable":    {Kind: canonical.ShapeBool},
		"testDate":            {Kind: canonical.ShapeDate},
		"testEnvironment":     {Kind: canonical.ShapeCategory, Options: []string{"Quiet Room", "Field Booth", "Open Area"}},
	},
	constvars.SectionDeviceFitting: {
		"deviceModel":       {Kind: canonical.ShapeString},
		"leftDeviceSerial":  {Kind: canonical.ShapeString},
		"rightDeviceSerial": {Kind: canonical.ShapeString},
		"fittingDate":       {Kind: canonical.ShapeDate},
		"comfortConfirmed":  {Kind: canonical.ShapeBool},
		"volumeSettings": {
			Kind: canonical.ShapeRecord,
			Nested: map[string]canonical.FieldShape{
				"left":  {Kind: canonical.ShapeNumber},
				"right": {Kind: canonical.ShapeNumber},
			},
		},
	},
	constvars.SectionFinalQC: {
		"qcPassed": {Kind: canonical.ShapeBool},
		"qcDate":   {Kind: canonical.ShapeDate},
		"qcNotes":  {Kind: canonical.ShapeString},
		"checksPerformed": {
			Kind: canonical.ShapeList,
		},
	},
	constvars.SectionAftercareAssessment: {
		"satisfaction":     {Kind: canonical.ShapeCategory, Options: []string{"Very Satisfied", "Satisfied", "Neutral", "Dissatisfied"}},
		"usageHoursPerDay": {Kind: canonical.ShapeNumber},
		"followUpNeeded":   {Kind: canonical.ShapeBool},
		"assessmentDate":   {Kind: canonical.ShapeDate},
		"reportedIssues":   {Kind: canonical.ShapeList},
	},
	constvars.SectionDeviceService: {
		"serviceType": {Kind: canonical.ShapeCategory, Options: []string{"Cleaning", "Repair", "Battery Replacement", "Refitting"}},
		"serviceDate": {Kind: canonical.ShapeDate},
		"issuesFound": {Kind: canonical.ShapeList},
		"resolved":    {Kind: canonical.ShapeBool},
	},
}

// normalizeSectionFields runs every incoming value through its declared
// shape. Fields without a declared shape keep their raw value.
func normalizeSectionFields(sectionKey string, fields map[string]interface{}) formstate.Fields {
	return normalizeSectionFieldsWithFallback(sectionKey, fields, nil)
}

// normalizeSectionFieldsWithFallback is the hydration variant: a stored value
// the normalizer cannot understand degrades to whatever the form already
// holds for that field, not to the unrecognized raw value.
func normalizeSectionFieldsWithFallback(sectionKey string, fields map[string]interface{}, current formstate.Fields) formstate.Fields {
	schema := sectionSchemas[sectionKey]
	normalized := make(formstate.Fields, len(fields))
	for name, raw := range fields {
		shape, ok := schema[name]
		if !ok {
			normalized[name] = raw
			continue
		}
		fallback := raw
		if existing, held := current[name]; held {
			fallback = existing
		}
		normalized[name] = canonical.Normalize(raw, shape, fallback)
	}
	return normalized
}
