package amendment

import (
	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusWithdrawn Status = "withdrawn"
	StatusCancelled Status = "cancelled"
)

var allStatuses = []Status{StatusPending, StatusActive, StatusWithdrawn, StatusCancelled}

func ParseStatus(name, value string) (Status, error) {
	for _, s := range allStatuses {
		if string(s) == value {
			return s, nil
		}
	}
	return "", unknownValue(name, value, statusValues())
}

func statusValues() []string {
	out := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		out[i] = string(s)
	}
	return out
}

type Type string

const (
	TypeCancellation Type = "cancellation"
)

var allTypes = []Type{TypeCancellation}

func ParseType(name, value string) (Type, error) {
	for _, t := range allTypes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", unknownValue(name, value, typeValues())
}

func typeValues() []string {
	out := make([]string, len(allTypes))
	for i, t := range allTypes {
		out[i] = string(t)
	}
	return out
}

// RelatesTo is the target kind of an amendment. It is derived from the
// operation type, never taken from the request.
type RelatesTo string

const (
	RelatesToTender RelatesTo = "tender"
	RelatesToLot    RelatesTo = "lot"
)

var allRelatesTo = []RelatesTo{RelatesToTender, RelatesToLot}

func ParseRelatesTo(name, value string) (RelatesTo, error) {
	for _, r := range allRelatesTo {
		if string(r) == value {
			return r, nil
		}
	}
	return "", unknownValue(name, value, relatesToValues())
}

func relatesToValues() []string {
	out := make([]string, len(allRelatesTo))
	for i, r := range allRelatesTo {
		out[i] = string(r)
	}
	return out
}

type OperationType string

const (
	OperationTenderCancellation OperationType = "tenderCancellation"
	OperationLotCancellation    OperationType = "lotCancellation"
)

var allOperationTypes = []OperationType{OperationTenderCancellation, OperationLotCancellation}

func ParseOperationType(name, value string) (OperationType, error) {
	for _, o := range allOperationTypes {
		if string(o) == value {
			return o, nil
		}
	}
	return "", unknownValue(name, value, OperationTypeValues())
}

func OperationTypeValues() []string {
	out := make([]string, len(allOperationTypes))
	for i, o := range allOperationTypes {
		out[i] = string(o)
	}
	return out
}

type DocumentType string

const (
	DocumentTypeCancellationDetails          DocumentType = "cancellationDetails"
	DocumentTypeConflictOfInterest           DocumentType = "conflictOfInterest"
	DocumentTypeEvaluationCriteria           DocumentType = "evaluationCriteria"
	DocumentTypeEligibilityCriteria          DocumentType = "eligibilityCriteria"
	DocumentTypeBillOfQuantity               DocumentType = "billOfQuantity"
	DocumentTypeIllustration                 DocumentType = "illustration"
	DocumentTypeMarketStudies                DocumentType = "marketStudies"
	DocumentTypeTenderNotice                 DocumentType = "tenderNotice"
	DocumentTypeBiddingDocuments             DocumentType = "biddingDocuments"
	DocumentTypeProcurementPlan              DocumentType = "procurementPlan"
	DocumentTypeTechnicalSpecifications      DocumentType = "technicalSpecifications"
	DocumentTypeContractDraft                DocumentType = "contractDraft"
	DocumentTypeHearingNotice                DocumentType = "hearingNotice"
	DocumentTypeClarifications               DocumentType = "clarifications"
	DocumentTypeEnvironmentalImpact          DocumentType = "environmentalImpact"
	DocumentTypeAssetAndLiabilityAssessment  DocumentType = "assetAndLiabilityAssessment"
	DocumentTypeRiskProvisions               DocumentType = "riskProvisions"
	DocumentTypeComplaints                   DocumentType = "complaints"
	DocumentTypeNeedsAssessment              DocumentType = "needsAssessment"
	DocumentTypeFeasibilityStudy             DocumentType = "feasibilityStudy"
	DocumentTypeProjectPlan                  DocumentType = "projectPlan"
	DocumentTypeShortlistedFirms             DocumentType = "shortlistedFirms"
	DocumentTypeEvaluationReports            DocumentType = "evaluationReports"
	DocumentTypeContractArrangements         DocumentType = "contractArrangements"
	DocumentTypeContractGuarantees           DocumentType = "contractGuarantees"
)

var allDocumentTypes = []DocumentType{
	DocumentTypeCancellationDetails,
	DocumentTypeConflictOfInterest,
	DocumentTypeEvaluationCriteria,
	DocumentTypeEligibilityCriteria,
	DocumentTypeBillOfQuantity,
	DocumentTypeIllustration,
	DocumentTypeMarketStudies,
	DocumentTypeTenderNotice,
	DocumentTypeBiddingDocuments,
	DocumentTypeProcurementPlan,
	DocumentTypeTechnicalSpecifications,
	DocumentTypeContractDraft,
	DocumentTypeHearingNotice,
	DocumentTypeClarifications,
	DocumentTypeEnvironmentalImpact,
	DocumentTypeAssetAndLiabilityAssessment,
	DocumentTypeRiskProvisions,
	DocumentTypeComplaints,
	DocumentTypeNeedsAssessment,
	DocumentTypeFeasibilityStudy,
	DocumentTypeProjectPlan,
	DocumentTypeShortlistedFirms,
	DocumentTypeEvaluationReports,
	DocumentTypeContractArrangements,
	DocumentTypeContractGuarantees,
}

func ParseDocumentType(name, value string) (DocumentType, error) {
	for _, d := range allDocumentTypes {
		if string(d) == value {
			return d, nil
		}
	}
	return "", unknownValue(name, value, DocumentTypeValues())
}

func DocumentTypeValues() []string {
	out := make([]string, len(allDocumentTypes))
	for i, d := range allDocumentTypes {
		out[i] = string(d)
	}
	return out
}

func unknownValue(name, actual string, expected []string) error {
	return fail.UnknownValue{Name: name, ActualValue: actual, ExpectedValues: expected}
}
