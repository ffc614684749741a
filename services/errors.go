package services

import "errors"

// Business-rule rejections. These are expected outcomes, not failures: the
// enclosing transaction rolls back, the caller gets a reason, nothing is
// retried. Anything not in this list is treated as an infrastructure error.
var (
	ErrHotelNotFound         = errors.New("hotel_not_found")
	ErrRoomNotFound          = errors.New("room_not_found")
	ErrCustomerNotFound      = errors.New("customer_not_found")
	ErrStaffNotFound         = errors.New("staff_not_found")
	ErrStayNotFound          = errors.New("stay_not_found")
	ErrServiceRecordNotFound = errors.New("service_record_not_found")
	ErrServiceTypeNotFound   = errors.New("service_type_not_found")

	ErrRoomOccupied       = errors.New("room_already_occupied")
	ErrOccupancyExceeded  = errors.New("occupancy_exceeds_room_maximum")
	ErrCardDetailsMissing = errors.New("card_details_incomplete")
	ErrRoomNotAssigned    = errors.New("room_not_assigned")
	ErrNoOpenStay         = errors.New("no_open_stay_for_room")
	ErrStayStillOpen      = errors.New("stay_still_open")

	ErrHotelHasOpenStays   = errors.New("hotel_has_open_stays")
	ErrCustomerHasOpenStay = errors.New("customer_has_open_stay")
	ErrStaffDedicated      = errors.New("staff_currently_dedicated")
	ErrStaffManagesHotel   = errors.New("staff_manages_hotel")
	ErrStaffIneligible     = errors.New("staff_not_eligible")
	ErrNotAManager         = errors.New("staff_not_a_manager")

	ErrInvalidCategory      = errors.New("invalid_room_category")
	ErrInvalidJobTitle      = errors.New("invalid_job_title")
	ErrInvalidServiceName   = errors.New("invalid_service_name")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
	ErrInvalidCost          = errors.New("invalid_cost")
	ErrInvalidStaffField    = errors.New("invalid_staff_field")

	ErrInvalidCredentials = errors.New("invalid_credentials")
)

var rejections = []error{
	ErrHotelNotFound, ErrRoomNotFound, ErrCustomerNotFound, ErrStaffNotFound,
	ErrStayNotFound, ErrServiceRecordNotFound, ErrServiceTypeNotFound,
	ErrRoomOccupied, ErrOccupancyExceeded, ErrCardDetailsMissing,
	ErrRoomNotAssigned, ErrNoOpenStay, ErrStayStillOpen,
	ErrHotelHasOpenStays, ErrCustomerHasOpenStay, ErrStaffDedicated,
	ErrStaffManagesHotel, ErrStaffIneligible, ErrNotAManager,
	ErrInvalidCategory, ErrInvalidJobTitle, ErrInvalidServiceName,
	ErrInvalidPaymentMethod, ErrInvalidCost, ErrInvalidStaffField,
	ErrInvalidCredentials,
}

// IsRejection distinguishes business-rule rejections from infrastructure
// failures so controllers can pick 4xx vs 5xx.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
