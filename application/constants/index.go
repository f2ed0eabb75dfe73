package constants

// idguard response codes
// these consist of 4 digit numbers
//
// the 1st 3 are randomly generated but represent specific scenarios
// 4th indicates if the response requires user interactions through a dialog box. 0 means it does not require. 1 means it requires.

var POPULATION_NOT_TRAINED uint = 4120          // prompt the operator to run training for the population
var SPOOF_ATTEMPT_DETECTED uint = 7431          // display the liveness failure dialog and ask for a fresh capture
var FACE_NOT_RECOGNISED uint = 4310             // show the "not recognised" dialog with a retry option
var ATTENDANCE_ALREADY_MARKED uint = 2850       // tell the operator attendance was already marked today
var TRAINING_PRODUCED_NO_SIGNATURES uint = 5211 // display a page explaining no member photos could be processed

var SUPPORT_EMAIL = "help@idguard.io"

var ATTENDANCE_DATE_LAYOUT = "2006-01-02"
