// Package audio wraps csfml-audio.
//
// A Sound plays a SoundBuffer it borrows, so the buffer cannot be closed
// while a sound still uses it. SoundStream and SoundRecorder call back into
// Go values supplied by the caller: a stream pulls samples from a
// StreamImpl and a recorder pushes captured samples to a RecorderImpl. Both
// need a backend that supports callbacks.
//
// The audio output is process-wide. OpenDevice claims it once per runtime
// and the Device hands out the Listener.
package audio
